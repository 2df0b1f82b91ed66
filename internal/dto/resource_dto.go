package dto

type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Channel     string `json:"channel"`
}

type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Source  string `json:"source"`
	Snippet string `json:"snippet"`
}

type VideosResponse struct {
	Success bool    `json:"success" example:"true"`
	Videos  []Video `json:"videos"`
}

type ArticlesResponse struct {
	Success  bool      `json:"success" example:"true"`
	Articles []Article `json:"articles"`
}
