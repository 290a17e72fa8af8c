package ipallowlist

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const cacheTTL = 900 * time.Second

// IPLister fetches the provider's published notification sender IPs.
type IPLister interface {
	AllowedIPs(ctx context.Context) ([]string, error)
}

// Service caches the SimPay sender IP list and answers membership checks.
// IP filtering is defense in depth only; the signature is the primary trust
// boundary. A fetch failure therefore fails open instead of dropping
// legitimate payment confirmations.
type Service struct {
	api IPLister

	mu        sync.Mutex
	ips       []string
	fetchedAt time.Time
}

func NewService(api IPLister) *Service {
	return &Service{api: api}
}

// IsAllowed reports whether ip is a known SimPay sender. A blank ip is never
// allowed; a stale or missing cache triggers a refetch, and any fetch error
// allows the caller through.
func (s *Service) IsAllowed(ctx context.Context, ip string) bool {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ips == nil || time.Since(s.fetchedAt) > cacheTTL {
		ips, err := s.api.AllowedIPs(ctx)
		if err != nil {
			logrus.Errorf("Error fetching SimPay IP allowlist, failing open: %s", err.Error())
			return true
		}
		s.ips = ips
		s.fetchedAt = time.Now()
	}

	for _, allowed := range s.ips {
		if allowed == ip {
			return true
		}
	}

	return false
}
