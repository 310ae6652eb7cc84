package network

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"

	"smartnotes/internal/logger"
)

// ClientFactory creates HTTP clients with proxy configuration.
type ClientFactory struct {
	proxyURL string
}

// NewClientFactory creates a new client factory. An empty proxyURL means
// direct connections.
func NewClientFactory(proxyURL string) *ClientFactory {
	return &ClientFactory{proxyURL: strings.TrimSpace(proxyURL)}
}

// NewHTTPClient creates a standard http.Client with proxy configuration.
// A zero timeout leaves the client without a deadline.
func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	client := &http.Client{Timeout: timeout}
	if f.proxyURL != "" {
		client.Transport = newTransportWithProxy(f.proxyURL)
	}
	return client
}

// newTransportWithProxy creates an http.Transport with proper proxy support.
// For SOCKS5 proxies, it uses golang.org/x/net/proxy for correct handling.
// For HTTP/HTTPS proxies, it uses the standard http.ProxyURL.
func newTransportWithProxy(proxyURL string) *http.Transport {
	base := http.DefaultTransport.(*http.Transport).Clone()

	parsed, err := url.Parse(proxyURL)
	if err != nil || parsed.Host == "" {
		logger.Warn("proxy url invalid", "module", "network", "action", "request", "resource", "proxy", "result", "failed", "proxy", proxyURL)
		return base
	}

	if strings.HasPrefix(parsed.Scheme, "socks") {
		var auth *proxy.Auth
		if parsed.User != nil {
			auth = &proxy.Auth{
				User: parsed.User.Username(),
			}
			if password, ok := parsed.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			logger.Warn("socks proxy init failed", "module", "network", "action", "request", "resource", "proxy", "result", "failed", "error", err)
			return base
		}

		base.Proxy = nil
		if ctxDialer, ok := dialer.(proxy.ContextDialer); ok {
			base.DialContext = ctxDialer.DialContext
		} else {
			base.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
		return base
	}

	base.Proxy = http.ProxyURL(parsed)
	return base
}
