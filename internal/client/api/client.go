// Package api is a thin typed client for the recetas HTTP API. It knows the
// wire format and the error envelope; session state lives one layer up, in
// the session manager.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnauthorized is returned for any 401 response. The session manager
// treats it as an implicit logout signal.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a non-401 API failure carrying the server's error message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// User is the identity snapshot the server returns and the client persists.
type User struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Email       string `json:"email"`
	Descripcion string `json:"descripcion,omitempty"`
	Foto        string `json:"foto,omitempty"`
}

// LoginResult is the payload of a successful POST /login.
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Register creates an account and returns the server's confirmation message.
// It never returns a token; registration does not authenticate.
func (c *Client) Register(ctx context.Context, nombre, email, password string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodPost, "/register", "", map[string]string{
		"nombre":   nombre,
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Login exchanges credentials for a session token and the public identity.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var resp LoginResult
	err := c.do(ctx, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile updates nombre/descripcion/foto for the given user id.
func (c *Client) UpdateProfile(ctx context.Context, token, id, nombre, descripcion, foto string) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	err := c.do(ctx, http.MethodPut, "/usuarios/"+id, token, map[string]string{
		"nombre":      nombre,
		"descripcion": descripcion,
		"foto":        foto,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// CreateRecipe uploads a recipe attributed to the token's identity.
func (c *Client) CreateRecipe(ctx context.Context, token, titulo, descripcion string) error {
	return c.do(ctx, http.MethodPost, "/upload/recipes", token, map[string]string{
		"titulo":      titulo,
		"descripcion": descripcion,
	}, nil)
}

// ToggleRecipeVisibility flips the comunidad flag on a recipe.
func (c *Client) ToggleRecipeVisibility(ctx context.Context, token, id string, comunidad bool) error {
	return c.do(ctx, http.MethodPatch, "/recipes/"+id, token, map[string]bool{
		"comunidad": comunidad,
	}, nil)
}

// DeleteRecipe removes a recipe; the server requires admin.
func (c *Client) DeleteRecipe(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/recipes/"+id, token, nil, nil)
}

// DeleteUser removes a user account; the server requires admin.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/usuarios/"+id, token, nil, nil)
}

// CreateComment posts a comment on a recipe.
func (c *Client) CreateComment(ctx context.Context, token, recipeID, body string) error {
	return c.do(ctx, http.MethodPost, "/comments", token, map[string]string{
		"recipe_id": recipeID,
		"body":      body,
	}, nil)
}

// DeleteComment removes a comment; the server requires author-or-admin.
func (c *Client) DeleteComment(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+id, token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		if envelope.Error == "" {
			envelope.Error = http.StatusText(resp.StatusCode)
		}
		return &Error{Status: resp.StatusCode, Message: envelope.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
