package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ondoapp/ondo-cli/internal/client/models"
)

// TokenResponse is the body of a successful login or register.
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

// RadarCategory is one axis of the server-computed radar. The server also
// sends id and persona_count; the client only reads what it renders.
type RadarCategory struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// RadarResponse is the per-user radar resource.
type RadarResponse struct {
	OverallScore float64         `json:"overall_score"`
	Categories   []RadarCategory `json:"categories"`
}

// ChatResponse is the ancillary AI chat reply.
type ChatResponse struct {
	Response string `json:"response"`
	Model    string `json:"model"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

type chatRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

// errorBody mirrors the backend's error payload. Detail may be a single
// message or a list of messages; both normalize to one string.
type errorBody struct {
	Detail detailText `json:"detail"`
}

type detailText string

func (d *detailText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = detailText(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*d = detailText(strings.Join(list, "; "))
		return nil
	}
	return fmt.Errorf("detail is neither string nor string list")
}
