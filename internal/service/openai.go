package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"fitbot/internal/config"
	"fitbot/internal/model"
	"fitbot/internal/utils"
)

// OpenAIClient handles OpenAI-compatible API interactions
type OpenAIClient struct {
	config     *config.OpenAIConfig
	httpClient *http.Client
}

// NewOpenAIClient creates a new OpenAI-compatible client
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (c *OpenAIClient) IsEnabled() bool {
	return c.config.Enabled
}

// ChatCompletionRequest represents a chat completion request
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	TopP           float64         `json:"top_p,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	ExtraBody      map[string]any  `json:"extra_body,omitempty"`
}

// ChatMessage represents a single message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat specifies the format of the response
type ResponseFormat struct {
	Type string `json:"type"` // "json_object" or "text"
}

// ChatCompletionResponse represents the API response
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// ChatCompletion performs a chat completion request
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("OpenAI API is not enabled (missing API key)")
	}

	// Use configured model if not specified
	if req.Model == "" {
		req.Model = c.config.ChatModel
	}

	// Apply default parameters from config
	if req.Temperature == 0 && c.config.ChatTemperature > 0 {
		req.Temperature = c.config.ChatTemperature
	}
	if req.TopP == 0 && c.config.ChatTopP > 0 {
		req.TopP = c.config.ChatTopP
	}
	if req.MaxTokens == 0 && c.config.ChatMaxTokens > 0 {
		req.MaxTokens = c.config.ChatMaxTokens
	}

	// Parse and apply extra_body from config if not already set
	if req.ExtraBody == nil && c.config.ChatExtraBody != "" {
		var extraBody map[string]any
		if err := json.Unmarshal([]byte(c.config.ChatExtraBody), &extraBody); err == nil {
			req.ExtraBody = extraBody
		} else {
			log.Printf("Warning: Failed to parse OPENAI_CHAT_EXTRA_BODY: %v", err)
		}
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.config.APIBase)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}

const extractionSystemPrompt = `You are a data extraction AI for a fitness onboarding conversation. Extract ONLY information the user EXPLICITLY stated, anywhere in the conversation.

FIELDS TO EXTRACT:
- gender: "male", "female", or "others"
- date_of_birth: YYYY-MM-DD format
- current_height: NUMBER ONLY (e.g., 69 for 5'9", or 175 for cm)
- current_height_unit: "cm" or "inch" (if user says feet, convert to inches: 5 foot 9 = 69 inches)
- target_height: NUMBER ONLY
- target_height_unit: "cm" or "inch"
- current_weight: NUMBER ONLY (e.g., 80)
- current_weight_unit: "kg" or "lbs" (extract from user input like "80kg" -> unit is "kg")
- target_weight: NUMBER ONLY
- target_weight_unit: "kg" or "lbs"
- goal: "lose_weight", "gain_weight", or "maintain"
- target_timeline_value: NUMBER ONLY (e.g., 20 for "20 months")
- target_timeline_unit: "days", "weeks", "months", or "years"
- target_speed: "slow", "normal", or "fast"
- activity_level: "sedentary", "light", "moderate", or "active" (map "very active" to "active")

CRITICAL RULES:
1. If user says "80kg", extract current_weight=80 AND current_weight_unit="kg"
2. If user says "5 foot 9 inch", convert to inches: current_height=69, current_height_unit="inch"
3. Map "very active" or "highly active" to "active", "lightly active" to "light"
4. If the user corrects an earlier answer, use the LATEST value
5. DO NOT set fields the user hasn't mentioned
6. Return ONLY valid JSON

Examples:
User: "I'm male, born on 20 july 2000"
Response: {"gender": "male", "date_of_birth": "2000-07-20"}

User: "5 foot 9 inch, 90 kg"
Response: {"current_height": 69, "current_height_unit": "inch", "current_weight": 90, "current_weight_unit": "kg"}

User: "I want to maintain my weight over the next 20 months"
Response: {"goal": "maintain", "target_timeline_value": 20, "target_timeline_unit": "months"}`

// Extract asks the model for field candidates over the full conversation.
// The full history (not just the latest message) goes to the model so it
// can resolve references and corrections across turns.
func (c *OpenAIClient) Extract(ctx context.Context, history []model.ChatMessage) (model.Extraction, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("OpenAI API is not enabled")
	}

	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: extractionSystemPrompt})
	for _, msg := range history {
		role := msg.Role
		if role == model.RoleBot {
			role = "assistant"
		}
		messages = append(messages, ChatMessage{Role: role, Content: msg.Content})
	}
	messages = append(messages, ChatMessage{
		Role:    "user",
		Content: "Extract the onboarding fields stated in this conversation. Return ONLY JSON.",
	})

	req := ChatCompletionRequest{
		Model:          c.config.ChatModel,
		Messages:       messages,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	resp, err := c.ChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	// Use robust JSON parser to handle various AI output formats
	var result model.Extraction
	content := resp.Choices[0].Message.Content
	if err := utils.ParseAIJSON(content, &result); err != nil {
		log.Printf("Failed to parse extraction response, content: %s", content)
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	return result, nil
}
