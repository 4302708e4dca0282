package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kwanchai/cleanbook/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case IdentityResult:
		o.printIdentity(v)
	case ServiceResult:
		o.printService(v)
	case []ServiceResult:
		o.printServices(v)
	case BookingResult:
		o.printBooking(v)
	case []BookingResult:
		o.printBookings(v)
	case HealthResult:
		o.printHealth(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// IdentityResult is the CLI view of a logged-in identity
type IdentityResult struct {
	SubjectID   string `json:"subjectId"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// ServiceResult is the CLI view of a service
type ServiceResult struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Details  string  `json:"details,omitempty"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration,omitempty"`
}

// BookingResult is the CLI view of a booking
type BookingResult struct {
	ID        string `json:"id"`
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Address   string `json:"address"`
	Note      string `json:"note,omitempty"`
	UserID    string `json:"userId,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// HealthResult is the health endpoint response
type HealthResult struct {
	Status string `json:"status"`
}

func serviceResult(svc *model.Service) ServiceResult {
	return ServiceResult{
		ID:       string(svc.ID),
		Name:     svc.Name,
		Details:  svc.Description,
		Price:    svc.Price,
		Duration: svc.Duration,
	}
}

func serviceResults(services []*model.Service) []ServiceResult {
	out := make([]ServiceResult, 0, len(services))
	for _, svc := range services {
		out = append(out, serviceResult(svc))
	}
	return out
}

func bookingResult(b *model.Booking) BookingResult {
	return BookingResult{
		ID:        string(b.ID),
		ServiceID: string(b.ServiceID),
		Date:      b.Date,
		Time:      b.Time,
		Address:   b.Address,
		Note:      b.Note,
		UserID:    b.UserID,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func bookingResults(bookings []*model.Booking) []BookingResult {
	out := make([]BookingResult, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingResult(b))
	}
	return out
}

func (o *Output) printIdentity(id IdentityResult) {
	fmt.Printf("Subject:  %s\n", id.SubjectID)
	fmt.Printf("Name:     %s\n", id.DisplayName)
	fmt.Printf("Role:     %s\n", id.Role)
}

func (o *Output) printService(svc ServiceResult) {
	fmt.Printf("ID:       %s\n", svc.ID)
	fmt.Printf("Name:     %s\n", svc.Name)
	if svc.Details != "" {
		fmt.Printf("Details:  %s\n", svc.Details)
	}
	fmt.Printf("Price:    %.2f\n", svc.Price)
	if svc.Duration != "" {
		fmt.Printf("Duration: %s\n", svc.Duration)
	}
}

func (o *Output) printServices(services []ServiceResult) {
	if len(services) == 0 {
		fmt.Println("No services")
		return
	}
	for i, svc := range services {
		if i > 0 {
			fmt.Println("---")
		}
		o.printService(svc)
	}
}

func (o *Output) printBooking(b BookingResult) {
	fmt.Printf("ID:       %s\n", b.ID)
	fmt.Printf("Service:  %s\n", b.ServiceID)
	fmt.Printf("When:     %s %s\n", b.Date, b.Time)
	fmt.Printf("Address:  %s\n", b.Address)
	if b.Note != "" {
		fmt.Printf("Note:     %s\n", b.Note)
	}
	if b.UserID != "" {
		fmt.Printf("User:     %s\n", b.UserID)
	}
	fmt.Printf("Status:   %s\n", b.Status)
	fmt.Printf("Created:  %s\n", b.CreatedAt)
}

func (o *Output) printBookings(bookings []BookingResult) {
	if len(bookings) == 0 {
		fmt.Println("No bookings")
		return
	}
	for i, b := range bookings {
		if i > 0 {
			fmt.Println("---")
		}
		o.printBooking(b)
	}
}

func (o *Output) printHealth(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
