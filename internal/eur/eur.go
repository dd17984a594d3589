// Package eur renders the Einnahmen-Überschuss-Rechnung as plain text
// the way it is handed to a tax advisor.
package eur

import (
	"fmt"
	"strings"

	"github.com/kleinbuch/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer formats amounts with German separators, e.g. "1.234,56".
var printer = message.NewPrinter(language.German)

// Amount formats a sum as a German currency string without the symbol.
// Rounding happens on the decimal itself, so sums too large for an
// exact float representation keep their value.
func Amount(sum decimal.Decimal) string {
	rounded := sum.Round(2)

	units := rounded.IntPart()
	cents := rounded.Sub(decimal.NewFromInt(units)).Abs().Mul(decimal.NewFromInt(100)).IntPart()

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		units = -units
	}

	return fmt.Sprintf("%s%s,%02d", sign, printer.Sprintf("%v", number.Decimal(units)), cents)
}

// Render returns the report as a German plain-text statement.
func Render(report models.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Einnahmen-Überschuss-Rechnung nach § 4 Abs. 3 EStG\n")
	fmt.Fprintf(&b, "Kalenderjahr %d\n", report.Year)
	b.WriteString("\n")

	b.WriteString("Betriebseinnahmen\n")
	for _, row := range report.Income {
		line(&b, "  "+row.Name, Amount(row.Sum))
	}
	line(&b, "Summe Betriebseinnahmen", Amount(report.TotalIncome))
	b.WriteString("\n")

	b.WriteString("Betriebsausgaben\n")
	for _, row := range report.Expense {
		line(&b, "  "+row.Name, Amount(row.Sum))
	}
	line(&b, "Summe Betriebsausgaben", Amount(report.TotalExpense))
	b.WriteString("\n")

	line(&b, string(report.Label), Amount(report.Result))

	if !report.Unclassified.IsZero() {
		b.WriteString("\n")
		line(&b, "Nicht zugeordnete Beträge", Amount(report.Unclassified))
	}

	b.WriteString("\nAls Kleinunternehmer nach § 19 UStG wird keine Umsatzsteuer ausgewiesen.\n")

	return b.String()
}

// line writes one aligned statement line. Alignment counts runes, not
// bytes, so names with umlauts line up too.
func line(b *strings.Builder, name, amount string) {
	const width = 52

	pad := width - len([]rune(name))
	if pad < 1 {
		pad = 1
	}

	fmt.Fprintf(b, "%s%s%12s €\n", name, strings.Repeat(" ", pad), amount)
}
