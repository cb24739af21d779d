package estimate

import (
	"fmt"
	"strings"

	"cctv_estimator/internal/domain/entities"
)

// Business identifies the shop in outbound messages and exported estimates.
type Business struct {
	Name  string
	Phone string
	Email string
}

// Customer is the optional contact block of an estimate message.
type Customer struct {
	Name  string
	Phone string
}

// Message builds the plain (not URL-encoded) estimate text handed to the
// messaging channel.
func Message(biz Business, c Customer, b entities.EstimateBreakdown) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🎥 *CCTV Estimate from %s*\n\n", biz.Name)
	if c.Name != "" {
		fmt.Fprintf(&sb, "*Customer:* %s\n", c.Name)
	}
	if c.Phone != "" {
		fmt.Fprintf(&sb, "*Phone:* %s\n\n", c.Phone)
	}
	sb.WriteString("*Items:*\n")
	for _, it := range b.Items {
		fmt.Fprintf(&sb, "• %s x%d: %s\n", it.Name, it.Quantity, FormatINR(it.Total))
	}
	fmt.Fprintf(&sb, "\n*Materials Total:* %s", FormatINR(b.MaterialTotal))
	fmt.Fprintf(&sb, "\n*Labor Charges:* %s", FormatINR(b.LaborCharge))
	fmt.Fprintf(&sb, "\n*Distance Charges:* %s", FormatINR(b.DistanceCharge))
	fmt.Fprintf(&sb, "\n\n*GRAND TOTAL: %s*", FormatINR(b.GrandTotal))
	sb.WriteString("\n\nPlease confirm this estimate or contact us for customization.")
	return sb.String()
}

// ContactMessage builds the text for a general contact inquiry.
func ContactMessage(name, phone, message string) string {
	return fmt.Sprintf("*New Inquiry from Website*\n\nName: %s\nPhone: %s\nMessage: %s", name, phone, message)
}

const ExportFileName = "cctv-estimate.txt"

// Export renders the downloadable plain-text estimate.
func Export(biz Business, b entities.EstimateBreakdown) string {
	rule := strings.Repeat("=", 37)

	var sb strings.Builder
	fmt.Fprintf(&sb, "CCTV ESTIMATE - %s\n", strings.ToUpper(biz.Name))
	sb.WriteString(rule + "\n\n")
	sb.WriteString("ITEMS:\n")
	for _, it := range b.Items {
		fmt.Fprintf(&sb, "%s x%d: %s\n", it.Name, it.Quantity, FormatINR(it.Total))
	}
	fmt.Fprintf(&sb, "\nMaterials Total: %s\n", FormatINR(b.MaterialTotal))
	fmt.Fprintf(&sb, "Labor Charges: %s\n", FormatINR(b.LaborCharge))
	fmt.Fprintf(&sb, "Distance Charges: %s\n", FormatINR(b.DistanceCharge))
	fmt.Fprintf(&sb, "\nGRAND TOTAL: %s\n", FormatINR(b.GrandTotal))
	sb.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&sb, "Contact: %s\n", biz.Phone)
	fmt.Fprintf(&sb, "Email: %s", biz.Email)
	return sb.String()
}

// SelectedProduct is the free-text summary stored with an estimate inquiry.
func SelectedProduct(cameraCount int) string {
	if cameraCount > 0 {
		return fmt.Sprintf("%d camera setup", cameraCount)
	}
	return "Custom CCTV estimate"
}
