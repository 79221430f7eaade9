package snapshot

import (
	"net/url"
	"strings"

	"github.com/alexanderramin/triage/internal/domain"
)

// EncodeShareURL builds the resumable link: the base URL with the share
// snapshot percent-encoded into the query string. Keys are emitted in
// sorted order so identical snapshots yield identical links.
func EncodeShareURL(base string, share domain.ShareSnapshot) string {
	vals := url.Values{}
	for k, v := range share {
		if v == "" {
			continue
		}
		vals.Set(k, v)
	}
	query := vals.Encode()
	if query == "" {
		return base
	}
	return base + "?" + query
}

// DecodeShareLink extracts the share snapshot from a full resumable link.
func DecodeShareLink(link string) domain.ShareSnapshot {
	if u, err := url.Parse(link); err == nil && u.RawQuery != "" {
		return DecodeShareQuery(u.RawQuery)
	}
	if _, query, ok := strings.Cut(link, "?"); ok {
		return DecodeShareQuery(query)
	}
	return domain.ShareSnapshot{}
}

// DecodeShareQuery parses a raw query string pair by pair. Malformed
// pairs are skipped individually; a bad field never aborts the load.
func DecodeShareQuery(query string) domain.ShareSnapshot {
	share := make(domain.ShareSnapshot)
	for _, pair := range strings.Split(strings.TrimPrefix(query, "?"), "&") {
		if pair == "" {
			continue
		}
		rawKey, rawVal, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil || key == "" {
			continue
		}
		val, err := url.QueryUnescape(rawVal)
		if err != nil || val == "" {
			continue
		}
		share[key] = val
	}
	return share
}
