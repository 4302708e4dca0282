package model

import "strings"

// ServiceID uniquely identifies a cleaning service offering
type ServiceID string

// Service is a cleaning service offering shown in the catalogue
type Service struct {
	ID          ServiceID
	Name        string
	Description string
	Price       float64
	Image       string // cover image URL
	Duration    string // human-readable, e.g. "2 hours"
}

// FilterServices returns the services whose name or description contains
// the query, case-insensitively. An empty query returns the input as-is.
func FilterServices(services []*Service, query string) []*Service {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return services
	}
	var out []*Service
	for _, s := range services {
		if strings.Contains(strings.ToLower(s.Name), query) ||
			strings.Contains(strings.ToLower(s.Description), query) {
			out = append(out, s)
		}
	}
	return out
}
