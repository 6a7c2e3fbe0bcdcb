package rentora

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentora/rentora-go/session"
)

const (
	// DefaultBaseURL is the local development backend address.
	DefaultBaseURL = "http://localhost:8081/api"
	// DefaultTimeout is the per-request ceiling. A call that exceeds it
	// fails with a transport error instead of hanging its caller.
	DefaultTimeout = 10 * time.Second
)

// Client is the Rentora API client.
//
// Use NewClient to create one:
//
//	store, _ := session.NewFileStore(cfg.SessionFile)
//	client := rentora.NewClient(
//	    rentora.WithBaseURL(cfg.APIURL),
//	    rentora.WithSessionStore(store),
//	    rentora.WithUnauthorizedHandler(func() { nav.GoToLogin() }),
//	)
type Client struct {
	baseURL        string
	httpClient     *http.Client
	store          session.Store
	onUnauthorized func()
	logger         zerolog.Logger

	// Services
	Auth         *AuthService
	Properties   *PropertiesService
	MyProperties *MyPropertiesService
	Bookings     *BookingsService
	Users        *UsersService
	Admin        *AdminService
	Landlord     *LandlordService
	Renter       *RenterService
	Messaging    *MessagingService
	Reviews      *ReviewsService
	Amenities    *AmenitiesService
	Images       *ImagesService
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets the backend base address. All request paths are
// relative to it.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithSessionStore sets the store the client reads the bearer token from
// and clears on 401. Without this option the client uses a process-local
// in-memory store.
func WithSessionStore(store session.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithUnauthorizedHandler sets the callback invoked after a 401 response
// has cleared the session. This is where the host application redirects to
// its login entry point. The handler runs at most once per failing
// response and must not issue authenticated calls of its own.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// WithLogger sets the request logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Rentora API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = session.NewMemoryStore()
	}

	// Initialize services
	c.Auth = newAuthService(c)
	c.Properties = &PropertiesService{client: c}
	c.MyProperties = &MyPropertiesService{client: c}
	c.Bookings = &BookingsService{client: c}
	c.Users = &UsersService{client: c}
	c.Admin = &AdminService{client: c}
	c.Landlord = &LandlordService{client: c}
	c.Renter = &RenterService{client: c}
	c.Messaging = &MessagingService{client: c}
	c.Reviews = &ReviewsService{client: c}
	c.Amenities = &AmenitiesService{client: c}
	c.Images = &ImagesService{client: c}

	return c
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Session returns the session store backing this client.
func (c *Client) Session() session.Store {
	return c.store
}
