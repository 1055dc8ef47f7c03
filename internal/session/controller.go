// Package session holds the client-side authentication state: whether a
// token is present, where it is persisted, and the meal list shown to the
// user.
package session

import (
	"context"
	"log"
	"sync"

	authdto "dietdiary-backend/internal/auth/dto"
)

type State int

const (
	Loading State = iota
	Authenticated
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// AuthAPI is the subset of the REST client the controller drives.
type AuthAPI interface {
	Register(ctx context.Context, name, email, password string) (*authdto.RegisterResponse, error)
	Login(ctx context.Context, email, password string) (*authdto.LoginResponse, error)
	Logout(ctx context.Context) error
}

// Controller tracks the authentication state and keeps the persisted token
// in step with it. It also serves as the TokenSource for the REST client.
type Controller struct {
	mu    sync.RWMutex
	api   AuthAPI
	store TokenStore
	state State
	creds Credentials
}

func NewController(api AuthAPI, store TokenStore) *Controller {
	return &Controller{api: api, store: store, state: Loading}
}

// SetAPI replaces the API the controller talks to. The REST client needs
// the controller as its token source, so the two are wired after creation.
func (c *Controller) SetAPI(api AuthAPI) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.api = api
}

// CheckAuth resolves Loading from the persisted token. A store error leaves
// the user signed out.
func (c *Controller) CheckAuth() State {
	creds, err := c.store.Load()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		log.Printf("[Session] Failed to read session: %v", err)
		c.creds = Credentials{}
		c.state = Unauthenticated
		return c.state
	}
	c.creds = creds
	if creds.Token != "" {
		c.state = Authenticated
	} else {
		c.state = Unauthenticated
	}
	return c.state
}

func (c *Controller) Register(ctx context.Context, name, email, password string) error {
	res, err := c.authAPI().Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	return c.signIn(Credentials{Token: res.Token, Username: res.Data.Name})
}

func (c *Controller) Login(ctx context.Context, email, password string) error {
	res, err := c.authAPI().Login(ctx, email, password)
	if err != nil {
		return err
	}
	return c.signIn(Credentials{Token: res.Token, Username: res.Username})
}

// Logout tells the server to drop its cookie, then forgets the token
// locally whether or not the server call succeeded.
func (c *Controller) Logout(ctx context.Context) error {
	if c.Token() != "" {
		if err := c.authAPI().Logout(ctx); err != nil {
			log.Printf("[Session] Server logout failed: %v", err)
		}
	}

	c.mu.Lock()
	c.creds = Credentials{}
	c.state = Unauthenticated
	c.mu.Unlock()

	return c.store.Clear()
}

func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Token implements client.TokenSource.
func (c *Controller) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.creds.Token
}

func (c *Controller) Username() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.creds.Username
}

func (c *Controller) signIn(creds Credentials) error {
	if err := c.store.Save(creds); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.creds = creds
	c.state = Authenticated
	return nil
}

func (c *Controller) authAPI() AuthAPI {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.api
}
