package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

/* ─── Request / Response types ───────────────────────────────────────── */

// estimateRequest is the request body for POST /api/diet/estimate.
type estimateRequest struct {
	Description string `json:"description" example:"2 eggs scrambled"`
	Meal        string `json:"meal" example:"breakfast"`
}

// estimateResponse is a draft diet entry filled in from a free-text
// description. Nothing is saved; the client posts it to /api/diet if the
// user accepts it. Confidence is 1-5.
type estimateResponse struct {
	FoodName   string  `json:"food_name"`
	Meal       string  `json:"meal,omitempty"`
	Calories   float64 `json:"calories"`
	Carbs      float64 `json:"carbs"`
	Protein    float64 `json:"protein"`
	Fat        float64 `json:"fat"`
	Confidence int     `json:"confidence"`
}

var (
	errEstimatorDisabled = errors.New("OPENAI_API_KEY not set")
	errUnrecognized      = errors.New("unrecognized food description")
)

const estimateSystemPrompt = `You are a nutrition assistant. Parse the food description and return a JSON object with:
- "food_name" (string, cleaned up title case)
- "calories" (number, kcal for the full quantity)
- "carbs" (number, grams for the full quantity)
- "protein" (number, grams for the full quantity)
- "fat" (number, grams for the full quantity)
- "confidence" (integer 1-5: 5=exact known nutritional data, 4=very close estimate, 3=reasonable estimate, 2=rough guess, 1=very uncertain)

Always provide your best estimate, even for unfamiliar or vague items. Only return {"error": "unrecognized"} if the input is not food at all.
Return only valid JSON, no explanation.`

/* ─── OpenAI client ──────────────────────────────────────────────────── */

// openAIMessage is a single message in the OpenAI chat completions request.
type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIRequest is the request body for the OpenAI chat completions API.
type openAIRequest struct {
	Model          string            `json:"model"`
	Messages       []openAIMessage   `json:"messages"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format"`
}

// nutritionEstimator turns food descriptions into macro estimates through the
// OpenAI chat completions API. Calls go through a circuit breaker so a failing
// upstream is not hammered by every client retry.
type nutritionEstimator struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	log     *zap.Logger
}

func newNutritionEstimator(cfg config, log *zap.Logger) *nutritionEstimator {
	e := &nutritionEstimator{
		baseURL: strings.TrimRight(cfg.OpenAIBaseURL, "/"),
		apiKey:  cfg.OpenAIAPIKey,
		model:   cfg.OpenAIModel,
		client:  &http.Client{Timeout: cfg.OpenAITimeout},
		log:     log,
	}
	e.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openai",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("breaker", name), zap.Stringer("from", from), zap.Stringer("to", to))
		},
		// A non-food description is a good answer, not an upstream failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errUnrecognized)
		},
	})
	return e
}

// estimate asks the model for the nutrition of description.
// Returns errUnrecognized when the model says the input is not food.
func (e *nutritionEstimator) estimate(ctx context.Context, description string) (estimateResponse, error) {
	if e.apiKey == "" {
		return estimateResponse{}, errEstimatorDisabled
	}
	out, err := e.breaker.Execute(func() (interface{}, error) {
		content, err := e.complete(ctx, []openAIMessage{
			{Role: "system", Content: estimateSystemPrompt},
			{Role: "user", Content: description},
		})
		if err != nil {
			return nil, err
		}
		return parseEstimate(content)
	})
	if err != nil {
		return estimateResponse{}, err
	}
	return out.(estimateResponse), nil
}

// complete sends a chat completions request and returns the content of the
// first choice.
func (e *nutritionEstimator) complete(ctx context.Context, messages []openAIMessage) (string, error) {
	bodyBytes, err := json.Marshal(openAIRequest{
		Model:          e.model,
		Messages:       messages,
		Temperature:    0,
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, respBytes)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return result.Choices[0].Message.Content, nil
}

// parseEstimate decodes the model's JSON answer. An explicit "unrecognized",
// a missing name, or non-positive calories all count as unrecognized.
func parseEstimate(content string) (estimateResponse, error) {
	var answer struct {
		estimateResponse
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(content), &answer); err != nil {
		return estimateResponse{}, fmt.Errorf("parse estimate: %w", err)
	}
	est := answer.estimateResponse
	if answer.Error != "" || strings.TrimSpace(est.FoodName) == "" || est.Calories <= 0 ||
		est.Carbs < 0 || est.Protein < 0 || est.Fat < 0 {
		return estimateResponse{}, errUnrecognized
	}
	if est.Confidence < 1 || est.Confidence > 5 {
		est.Confidence = 1
	}
	return est, nil
}

/* ─── Handler ────────────────────────────────────────────────────────── */

// estimateDietEntry parses a food description into a draft diet entry.
//
//	@Summary	Estimate nutrition from a description
//	@Tags		diet
//	@Accept		json
//	@Produce	json
//	@Param		request	body		estimateRequest	true	"Food description"
//	@Success	200		{object}	estimateResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	500		{object}	errorResponse
//	@Failure	503		{object}	errorResponse
//	@Security	BearerAuth
//	@Router		/diet/estimate [post]
func (h *Handler) estimateDietEntry(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		apiError(c, http.StatusBadRequest, "description is required")
		return
	}
	if req.Meal != "" && !validMeals[req.Meal] {
		apiError(c, http.StatusBadRequest, "meal must be one of: breakfast, lunch, dinner, snack")
		return
	}

	est, err := h.estimator.estimate(c.Request.Context(), req.Description)
	switch {
	case err == nil:
		h.metrics.estimateRequests.WithLabelValues("ok").Inc()
		est.Meal = req.Meal
		c.JSON(http.StatusOK, est)
	case errors.Is(err, errUnrecognized):
		h.metrics.estimateRequests.WithLabelValues("unrecognized").Inc()
		c.JSON(http.StatusOK, gin.H{"error": "unrecognized"})
	case errors.Is(err, errEstimatorDisabled):
		h.metrics.estimateRequests.WithLabelValues("disabled").Inc()
		apiError(c, http.StatusServiceUnavailable, "nutrition estimates not configured")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		h.metrics.estimateRequests.WithLabelValues("rejected").Inc()
		apiError(c, http.StatusServiceUnavailable, "nutrition estimates temporarily unavailable")
	default:
		h.metrics.estimateRequests.WithLabelValues("error").Inc()
		h.log.Error("openai request failed", zap.Error(err))
		apiError(c, http.StatusInternalServerError, "openai request failed")
	}
}
