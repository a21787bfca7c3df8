// internal/domain/checkout/service.go
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/cart-engine/internal/config"
	"github.com/your-org/cart-engine/internal/domain/cart"
)

// Service is the checkout readiness gate. It blocks checkout until every cart
// line has its required variant selections, then hands a frozen order
// snapshot to the external checkout-session service. Cart state is never
// mutated on this path.
type Service struct {
	config *config.Config
	logger *logrus.Logger
	store  *cart.Store
	client *http.Client
}

// NewService creates a new checkout service
func NewService(cfg *config.Config, store *cart.Store, logger *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		logger: logger,
		store:  store,
		client: &http.Client{Timeout: cfg.Checkout.RequestTimeout},
	}
}

// User identifies the purchaser handed to the session service
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// MissingSelection enumerates one incomplete line for the rejection payload
type MissingSelection struct {
	ItemName          string   `json:"item_name"`
	MissingSelections []string `json:"missing_selections"`
}

// Validation represents the readiness decision for the current cart
type Validation struct {
	IsValid         bool               `json:"is_valid"`
	IncompleteItems []MissingSelection `json:"incomplete_items,omitempty"`
}

// Order is the frozen snapshot handed to the session service
type Order struct {
	Items  []cart.Item   `json:"items"`
	Totals cart.Snapshot `json:"totals"`
}

// SessionRequest is the payload sent to the checkout-session service
type SessionRequest struct {
	Items           []cart.Item     `json:"items"`
	UserEmail       string          `json:"userEmail"`
	UserID          string          `json:"userId"`
	SuccessRedirect string          `json:"successRedirect"`
	CancelRedirect  string          `json:"cancelRedirect"`
	Metadata        SessionMetadata `json:"metadata"`
	IdempotencyKey  string          `json:"idempotencyKey"`
}

// SessionMetadata carries the pricing breakdown for the payment provider
type SessionMetadata struct {
	MemberDiscount int64 `json:"memberDiscount"`
	BundleDiscount int64 `json:"bundleDiscount"`
	Shipping       int64 `json:"shipping"`
	Tax            int64 `json:"tax"`
}

// SessionResponse is the session service's reply
type SessionResponse struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl"`
}

// SessionResult represents a checkout attempt. A rejected attempt carries the
// validation payload and no session; a successful one carries both.
type SessionResult struct {
	Validation Validation       `json:"validation"`
	Session    *SessionResponse `json:"session,omitempty"`
}

// Validate classifies the current cart lines and enumerates every missing
// selection. Recomputed on demand; no state is cached or mutated.
func (s *Service) Validate() Validation {
	classification := cart.Classify(s.store.Items())

	validation := Validation{IsValid: len(classification.Incomplete) == 0}
	for _, incomplete := range classification.Incomplete {
		validation.IncompleteItems = append(validation.IncompleteItems, MissingSelection{
			ItemName:          incomplete.Item.Name,
			MissingSelections: incomplete.Missing,
		})
	}

	return validation
}

// CreateSession attempts the checkout handoff. An incomplete cart is rejected
// with the enumerated validation payload and a nil error; checkout never
// partially proceeds. External service failures are returned as user-facing
// errors with the cart left untouched so the attempt can be retried.
func (s *Service) CreateSession(ctx context.Context, user User) (*SessionResult, error) {
	validation := s.Validate()
	if !validation.IsValid {
		s.logger.WithField("incomplete_items", len(validation.IncompleteItems)).
			Info("Checkout blocked by incomplete variant selections")
		return &SessionResult{Validation: validation}, nil
	}

	order := Order{
		Items:  s.store.Items(),
		Totals: s.store.Totals(),
	}
	if len(order.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	session, err := s.createSession(ctx, order, user)
	if err != nil {
		s.logger.WithError(err).Error("Checkout session creation failed")
		return nil, fmt.Errorf("failed to start checkout, please try again: %w", err)
	}

	return &SessionResult{
		Validation: validation,
		Session:    session,
	}, nil
}

// createSession posts the frozen order to the configured session endpoint
func (s *Service) createSession(ctx context.Context, order Order, user User) (*SessionResponse, error) {
	if s.config.Checkout.SessionURL == "" {
		return nil, fmt.Errorf("checkout session service not configured")
	}

	reqData := SessionRequest{
		Items:           order.Items,
		UserEmail:       user.Email,
		UserID:          user.ID,
		SuccessRedirect: s.config.Checkout.SuccessRedirect,
		CancelRedirect:  s.config.Checkout.CancelRedirect,
		Metadata: SessionMetadata{
			MemberDiscount: order.Totals.MemberDiscount,
			BundleDiscount: order.Totals.BundleDiscount,
			Shipping:       order.Totals.Shipping,
			Tax:            order.Totals.Tax,
		},
		IdempotencyKey: uuid.NewString(),
	}

	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.Checkout.SessionURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("session service returned status %d: %s", resp.StatusCode, string(body))
	}

	var session SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode session response: %w", err)
	}

	return &session, nil
}
