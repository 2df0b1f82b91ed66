package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/edulink/internal/apperr"
	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/llm"
	"github.com/lshigami/edulink/internal/model"
	"github.com/rs/zerolog/log"
)

// ChatApology is the reply sent whenever the tutor cannot answer.
const ChatApology = "I'm having trouble connecting to my brain right now. Please try again in a moment."

// MaxChatHistoryTurns bounds how much prior conversation goes into a prompt.
const MaxChatHistoryTurns = 20

const (
	ChatModeLearn     = "learn"
	ChatModePractice  = "practice"
	ChatModeInterview = "interview"
)

type ContentGeneratorService interface {
	GenerateLearningContent(ctx context.Context, topic string, confidenceLevel int, goal string) (*dto.LearningContent, error)
	// GenerateChatResponse never fails; errors are replaced by ChatApology.
	GenerateChatResponse(ctx context.Context, message, topic, mode string, history []dto.ChatTurn) string
	GenerateCustomQuiz(ctx context.Context, topic string, cfg model.QuizConfig) ([]model.GeneratedQuestion, error)
	GenerateTimetable(ctx context.Context, prompt string) (*dto.Timetable, error)
	MockMode() bool
}

type contentGeneratorService struct {
	provider llm.Provider
}

// NewContentGeneratorService serves mock content when provider is nil.
func NewContentGeneratorService(provider llm.Provider) ContentGeneratorService {
	return &contentGeneratorService{provider: provider}
}

func (s *contentGeneratorService) MockMode() bool {
	return s.provider == nil
}

// DifficultyForConfidence maps a 1-5 self assessment to a prompt difficulty.
func DifficultyForConfidence(confidenceLevel int) string {
	switch {
	case confidenceLevel <= 2:
		return "beginner"
	case confidenceLevel == 3:
		return "intermediate"
	default:
		return "advanced"
	}
}

var quizQuestionSchema = map[string]any{
	"type":     "object",
	"required": []string{"question", "options", "correct"},
	"properties": map[string]any{
		"question": map[string]any{"type": "string", "minLength": 1},
		"options": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items":    map[string]any{"type": "string"},
		},
		"correct":     map[string]any{"type": "integer", "minimum": 0},
		"explanation": map[string]any{"type": "string"},
	},
}

var learningContentSchema = &llm.Schema{
	Name: "learning-content",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"explanation", "example"},
		"properties": map[string]any{
			"explanation": map[string]any{"type": "string"},
			"example":     map[string]any{"type": "string"},
			"quiz":        map[string]any{"type": "array", "items": quizQuestionSchema},
		},
	},
}

var customQuizSchema = &llm.Schema{
	Name: "custom-quiz",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"quiz"},
		"properties": map[string]any{
			"quiz": map[string]any{"type": "array", "minItems": 1, "items": quizQuestionSchema},
		},
	},
}

var timetableSchema = &llm.Schema{
	Name: "timetable",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"schedule"},
		"properties": map[string]any{
			"schedule": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"day", "slots"},
					"properties": map[string]any{
						"day": map[string]any{"type": "string"},
						"slots": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []string{"time", "activity", "type"},
								"properties": map[string]any{
									"time":     map[string]any{"type": "string"},
									"activity": map[string]any{"type": "string"},
									"type": map[string]any{
										"type": "string",
										"enum": []string{dto.SlotStudy, dto.SlotBusy, dto.SlotBreak, dto.SlotLeisure},
									},
								},
							},
						},
					},
				},
			},
		},
	},
}

func (s *contentGeneratorService) GenerateLearningContent(ctx context.Context, topic string, confidenceLevel int, goal string) (*dto.LearningContent, error) {
	if s.MockMode() {
		return mockLearningContent(topic, goal), nil
	}

	raw, err := s.provider.Complete(ctx, llm.Request{
		Prompt:      learningPrompt(topic, confidenceLevel, goal),
		Temperature: 0.5,
	})
	if err != nil {
		var unauthorized *llm.ErrUnauthorized
		if errors.As(err, &unauthorized) {
			log.Warn().Err(err).Msg("LLM API key rejected, falling back to mock learning content")
			return mockLearningContent(topic, goal), nil
		}
		log.Error().Err(err).Str("topic", topic).Msg("Learning content generation failed")
		return nil, providerError(err)
	}

	var content dto.LearningContent
	if err := llm.Decode(raw, learningContentSchema, &content); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Learning content had unexpected format")
		return nil, apperr.ContentFormat(err)
	}
	if err := checkQuizQuestions(content.Quiz); err != nil {
		return nil, apperr.ContentFormat(err)
	}
	if content.Quiz == nil {
		content.Quiz = []model.QuizQuestion{}
	}
	return &content, nil
}

func (s *contentGeneratorService) GenerateChatResponse(ctx context.Context, message, topic, mode string, history []dto.ChatTurn) string {
	if s.MockMode() {
		return fmt.Sprintf("(Mock %s mode) I received: \"%s\". Since I'm in mock mode, I can't generate a real AI response, but in a real scenario, I would act as your %s mentor for %s.",
			mode, message, mode, topic)
	}

	reply, err := s.provider.Complete(ctx, llm.Request{
		Prompt:      chatPrompt(message, topic, mode, history),
		Temperature: 0.5,
	})
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Str("mode", mode).Msg("Chat generation failed")
		return ChatApology
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return ChatApology
	}
	return reply
}

func (s *contentGeneratorService) GenerateCustomQuiz(ctx context.Context, topic string, cfg model.QuizConfig) ([]model.GeneratedQuestion, error) {
	if s.MockMode() {
		return mockCustomQuiz(topic, cfg), nil
	}

	raw, err := s.provider.Complete(ctx, llm.Request{
		Prompt:      quizPrompt(topic, cfg),
		Temperature: 0.5,
	})
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Quiz generation failed")
		return nil, providerError(err)
	}

	var payload struct {
		Quiz []model.GeneratedQuestion `json:"quiz"`
	}
	if err := llm.Decode(raw, customQuizSchema, &payload); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Generated quiz had unexpected format")
		return nil, apperr.ContentFormat(err)
	}
	for i, q := range payload.Quiz {
		if q.CorrectIndex >= len(q.Options) {
			return nil, apperr.ContentFormat(fmt.Errorf("question %d: correct index %d out of range", i, q.CorrectIndex))
		}
	}
	return payload.Quiz, nil
}

func (s *contentGeneratorService) GenerateTimetable(ctx context.Context, prompt string) (*dto.Timetable, error) {
	if s.MockMode() {
		return mockTimetable(), nil
	}

	raw, err := s.provider.Complete(ctx, llm.Request{
		System:      timetableSystemPrompt,
		Prompt:      prompt,
		Temperature: 0.2,
	})
	if err != nil {
		var unauthorized *llm.ErrUnauthorized
		if errors.As(err, &unauthorized) {
			log.Warn().Err(err).Msg("LLM API key rejected, falling back to mock timetable")
			return mockTimetable(), nil
		}
		log.Error().Err(err).Msg("Timetable generation failed")
		return nil, providerError(err)
	}

	var timetable dto.Timetable
	if err := llm.Decode(raw, timetableSchema, &timetable); err != nil {
		log.Error().Err(err).Msg("Timetable had unexpected format")
		return nil, apperr.ContentFormat(err)
	}
	return &timetable, nil
}

func providerError(err error) error {
	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return apperr.ContentFormat(err)
	}
	return apperr.UpstreamProvider("AI provider request failed", err)
}

func checkQuizQuestions(quiz []model.QuizQuestion) error {
	for i, q := range quiz {
		if q.CorrectIndex >= len(q.Options) {
			return fmt.Errorf("question %d: correct index %d out of range", i, q.CorrectIndex)
		}
		quiz[i].UserAnswer = nil
	}
	return nil
}

func learningPrompt(topic string, confidenceLevel int, goal string) string {
	difficulty := DifficultyForConfidence(confidenceLevel)
	return fmt.Sprintf(`You are an expert educational tutor. Generate learning content with this exact JSON structure:

Topic: %[1]s
Difficulty Level: %[2]s
Learning Goal: %[3]s

Return ONLY valid JSON (no markdown, no extra text):
{
  "explanation": "A clear, %[2]s-level explanation of %[1]s (2-3 sentences)",
  "example": "A real-world example relevant to %[3]s",
  "quiz": [
    {"question": "Question text", "options": ["Option A", "Option B", "Option C", "Option D"], "correct": 0}
  ]
}
The quiz must contain exactly 3 questions. "correct" is the zero-based index of the right option.`, topic, difficulty, goal)
}

func quizPrompt(topic string, cfg model.QuizConfig) string {
	return fmt.Sprintf(`Generate a %s level quiz about "%s".

Configuration:
- Number of questions: %d
- Style: %s (Direct = concept recall, Scenario = application/interview style)
- Include Trick Questions: %t
- Include True/False: %t

Return ONLY valid JSON with this structure:
{
  "quiz": [
    {
      "question": "Question text here",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correct": 0,
      "explanation": "Brief explanation of why the correct answer is correct."
    }
  ]
}`, cfg.Difficulty, topic, cfg.NumQuestions, cfg.Style, cfg.IncludeTrick, cfg.IncludeTrueFalse)
}

func personaFor(topic, mode string) string {
	persona := fmt.Sprintf("You are an expert AI tutor specializing in %s. ", topic)
	switch mode {
	case ChatModeLearn:
		persona += "Your goal is to explain concepts clearly, use analogies, and ensure the student understands. Keep responses concise, friendly, and encouraging. Use formatting like bolding and bullet points for readability."
	case ChatModePractice:
		persona += "Your goal is to test the student's knowledge. Ask short, specific challenge questions one by one. Evaluate their response as CLEAR, PARTIAL, or CONFUSED, provide brief feedback, and then ask the next logical question."
	case ChatModeInterview:
		persona += "You are a technical interviewer at a top tech company. Maintain a professional yet supportive tone. Ask progressive follow-up questions (DSA/System Design/etc). If the user struggles, provide subtle hints. If they answer well, dig deeper into edge cases."
	}
	return persona
}

// chatPrompt flattens persona, the most recent history and the new message
// into a single completion prompt.
func chatPrompt(message, topic, mode string, history []dto.ChatTurn) string {
	if len(history) > MaxChatHistoryTurns {
		history = history[len(history)-MaxChatHistoryTurns:]
	}
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		speaker := "Tutor"
		if turn.Sender == model.SenderUser {
			speaker = "Student"
		}
		lines = append(lines, speaker+": "+turn.Text)
	}
	return fmt.Sprintf("%s\n\nConversation History:\n%s\n\nStudent: %s\nTutor:",
		personaFor(topic, mode), strings.Join(lines, "\n"), message)
}

const timetableSystemPrompt = `You are an expert academic study planner. Create a detailed weekly timetable based on the user's request.

Rules:
1. Identify unavailable hours (college, work, sleep, commute, etc.) from the user's description.
2. Allocate study slots for requested subjects efficiently.
3. Include short breaks (15-30 mins) between long sessions.
4. Ensure the schedule covers Monday to Sunday.
5. Return ONLY valid JSON matching the structure below. Do not include markdown formatting.

JSON Structure:
{
  "schedule": [
    {
      "day": "Monday",
      "slots": [
        { "time": "HH:MM - HH:MM", "activity": "Activity Name", "type": "study" }
      ]
    }
  ]
}

Allowed types: 'study', 'busy', 'break', 'leisure'.`
