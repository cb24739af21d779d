package estimate

import "strconv"

// FormatINR renders amount as whole rupees with Indian digit grouping:
// the last three digits, then groups of two (₹12,34,567).
func FormatINR(amount int64) string {
	sign := ""
	magnitude := uint64(amount)
	if amount < 0 {
		sign = "-"
		// Two's complement negation also covers math.MinInt64.
		magnitude = -magnitude
	}
	digits := strconv.FormatUint(magnitude, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	out := make([]byte, 0, len(digits)+len(digits)/2)
	lead := len(head) % 2
	if lead > 0 {
		out = append(out, head[:lead]...)
	}
	for i := lead; i < len(head); i += 2 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, head[i:i+2]...)
	}
	out = append(out, ',')
	out = append(out, tail...)
	return sign + "₹" + string(out)
}
