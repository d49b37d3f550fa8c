package entropy

import (
	"fmt"
	"strings"
)

// WidthSummary carries the bit allocation a report is judged against.
type WidthSummary struct {
	OnsetBits   uint
	NucleusBits uint
	CodaBits    uint
}

// Widths returns the analyzer's bit allocation for reporting.
func (a *Analyzer) Widths() WidthSummary {
	return WidthSummary{
		OnsetBits:   a.onsetBits,
		NucleusBits: a.nucleusBits,
		CodaBits:    a.codaBits,
	}
}

// FormatReport renders a human-readable analysis report.
func FormatReport(m Metrics, w WidthSummary) string {
	var b strings.Builder
	rule := strings.Repeat("=", 70)
	thin := strings.Repeat("-", 70)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "SYLLABLE ENCODING ENTROPY ANALYSIS")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "\nBit Allocation: Onset=%d, Nucleus=%d, Coda=%d\n",
		w.OnsetBits, w.NucleusBits, w.CodaBits)
	fmt.Fprintf(&b, "Total Words Analyzed: %d\n", m.TotalWords)
	fmt.Fprintf(&b, "Unique Word Patterns: %d\n", m.UniquePatterns)

	fmt.Fprintln(&b, "\n"+thin)
	fmt.Fprintln(&b, "ENTROPY MEASURES (in bits)")
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "Onset Entropy:    %.3f / %d bits (%s of max)\n",
		m.OnsetEntropy, w.OnsetBits, percentOf(m.OnsetEntropy, w.OnsetBits))
	fmt.Fprintf(&b, "Nucleus Entropy:  %.3f / %d bits (%s of max)\n",
		m.NucleusEntropy, w.NucleusBits, percentOf(m.NucleusEntropy, w.NucleusBits))
	fmt.Fprintf(&b, "Coda Entropy:     %.3f / %d bits (%s of max)\n",
		m.CodaEntropy, w.CodaBits, percentOf(m.CodaEntropy, w.CodaBits))
	fmt.Fprintf(&b, "Joint Entropy:    %.3f bits\n", m.JointEntropy)

	redundancy := m.OnsetEntropy + m.NucleusEntropy + m.CodaEntropy - m.JointEntropy
	fmt.Fprintf(&b, "Redundancy:       %.3f bits\n", redundancy)

	fmt.Fprintln(&b, "\n"+thin)
	fmt.Fprintln(&b, "BIT UTILIZATION")
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "Onset:   %d unique patterns (%.1f%%)\n", m.UniqueOnsetPatterns, m.OnsetUtilization*100)
	fmt.Fprintf(&b, "Nucleus: %d unique patterns (%.1f%%)\n", m.UniqueNucleusPatterns, m.NucleusUtilization*100)
	fmt.Fprintf(&b, "Coda:    %d unique patterns (%.1f%%)\n", m.UniqueCodaPatterns, m.CodaUtilization*100)

	fmt.Fprintln(&b, "\n"+thin)
	fmt.Fprintln(&b, "INTERPRETATION")
	fmt.Fprintln(&b, thin)
	fmt.Fprintln(&b, provisioning("Onset", m.OnsetUtilization))
	fmt.Fprintln(&b, provisioning("Nucleus", m.NucleusUtilization))
	fmt.Fprintln(&b, provisioning("Coda", m.CodaUtilization))
	fmt.Fprintln(&b, rule)

	return b.String()
}

func percentOf(entropy float64, bits uint) string {
	if bits == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", entropy/float64(bits)*100)
}

func provisioning(name string, utilization float64) string {
	switch {
	case utilization < 0.25:
		return fmt.Sprintf("! %s is over-provisioned (using <25%% of available patterns)", name)
	case utilization > 0.75:
		return fmt.Sprintf("! %s may be under-provisioned (using >75%% of available patterns)", name)
	default:
		return fmt.Sprintf("+ %s bit allocation appears appropriate", name)
	}
}
