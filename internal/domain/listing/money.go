package listing

import "github.com/dustin/go-humanize"

// FormatUSD renders a currency amount the way log and confirmation messages
// show it, e.g. 228000 -> "$228,000.00".
func FormatUSD(amount float64) string {
	return "$" + humanize.FormatFloat("#,###.##", amount)
}
