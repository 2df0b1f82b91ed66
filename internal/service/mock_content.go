package service

import (
	"fmt"

	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/model"
)

func mockLearningContent(topic, goal string) *dto.LearningContent {
	return &dto.LearningContent{
		Explanation: fmt.Sprintf("(Mock Mode) Here is a generated explanation for %s. Since no valid LLM API key was found, this is a placeholder text.", topic),
		Example:     fmt.Sprintf("(Mock Mode) A real-world example of %s applied to %s.", topic, goal),
		Quiz: []model.QuizQuestion{
			{
				Question:     fmt.Sprintf("What is the main benefit of %s?", topic),
				Options:      []string{"Efficiency", "Complexity", "Confusion", "Nothing"},
				CorrectIndex: 0,
			},
			{
				Question:     "Which scenario fits best?",
				Options:      []string{"Scenario A", "Scenario B", "Scenario C", "Scenario D"},
				CorrectIndex: 1,
			},
			{
				Question:     "True or False?",
				Options:      []string{"True", "False"},
				CorrectIndex: 0,
			},
		},
	}
}

func mockCustomQuiz(topic string, cfg model.QuizConfig) []model.GeneratedQuestion {
	quiz := make([]model.GeneratedQuestion, cfg.NumQuestions)
	for i := range quiz {
		quiz[i] = model.GeneratedQuestion{
			Question:     fmt.Sprintf("(Mock) %s question %d about %s (%s)", cfg.Difficulty, i+1, topic, cfg.Style),
			Options:      []string{"Answer A", "Answer B", "Answer C", "Answer D"},
			CorrectIndex: 0,
		}
	}
	return quiz
}

func mockTimetable() *dto.Timetable {
	weekdays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	timetable := &dto.Timetable{}
	for _, day := range weekdays {
		timetable.Schedule = append(timetable.Schedule, dto.DaySchedule{
			Day: day,
			Slots: []dto.TimeSlot{
				{Time: "09:00 - 16:00", Activity: "(Mock) Classes", Type: dto.SlotBusy},
				{Time: "17:00 - 18:30", Activity: "(Mock) Study session", Type: dto.SlotStudy},
				{Time: "18:30 - 19:00", Activity: "Break", Type: dto.SlotBreak},
				{Time: "19:00 - 20:00", Activity: "(Mock) Revision", Type: dto.SlotStudy},
			},
		})
	}
	for _, day := range []string{"Saturday", "Sunday"} {
		timetable.Schedule = append(timetable.Schedule, dto.DaySchedule{
			Day: day,
			Slots: []dto.TimeSlot{
				{Time: "10:00 - 12:00", Activity: "(Mock) Practice problems", Type: dto.SlotStudy},
				{Time: "12:00 - 13:00", Activity: "Lunch", Type: dto.SlotBreak},
				{Time: "15:00 - 18:00", Activity: "Free time", Type: dto.SlotLeisure},
			},
		})
	}
	return timetable
}
