// Package moderation scans user-submitted review text for content issues.
// The scanner classifies, it does not decide: callers apply the policy that
// only block-severity issues stop a submission, while warn/info findings are
// returned to the author to address voluntarily.
package moderation

import (
	"regexp"
	"strings"
)

type Severity string

const (
	SeverityBlock Severity = "block"
	SeverityWarn  Severity = "warn"
	SeverityInfo  Severity = "info"
)

type IssueType string

const (
	IssueProfanity      IssueType = "profanity"
	IssueThreat         IssueType = "threat"
	IssuePersonalAttack IssueType = "personal_attack"
	IssuePIIEmail       IssueType = "pii_email"
	IssuePIIPhone       IssueType = "pii_phone"
	IssuePIISSN         IssueType = "pii_ssn"
	IssueExcessiveCaps  IssueType = "excessive_caps"
	IssueRepeatedChars  IssueType = "repeated_chars"
)

// Issue is one finding in the scanned text. Start/End are byte offsets of
// the matched span, end exclusive.
type Issue struct {
	Type       IssueType `json:"type"`
	Severity   Severity  `json:"severity"`
	Start      int       `json:"start"`
	End        int       `json:"end"`
	Suggestion string    `json:"suggestion"`
}

var profanityWords = []string{
	"fuck", "fucking", "fucker", "shit", "shitty", "bullshit",
	"asshole", "bastard", "bitch", "cunt", "dickhead",
}

var threatPhrases = []string{
	`i('ll| will) (kill|hurt|find|get) you`,
	`you('ll| will) (pay|regret|be sorry)`,
	`watch your back`,
	`i know where you live`,
}

var attackPhrases = []string{
	`you('re| are) (a |an )?(idiot|moron|liar|crook|thief|scumbag|con artist)`,
	`this (idiot|moron|crook|scumbag)`,
}

// repeatedRuns matches five or more of the same letter or punctuation mark.
// RE2 has no backreferences, so the runs are enumerated per character.
var repeatedRuns = func() string {
	var alts []string
	for c := 'a'; c <= 'z'; c++ {
		alts = append(alts, string(c)+"{5,}")
	}
	for _, c := range []string{"!", `\?`, `\.`} {
		alts = append(alts, c+"{5,}")
	}
	return "(?i)(" + strings.Join(alts, "|") + ")"
}()

type pattern struct {
	re         *regexp.Regexp
	issueType  IssueType
	severity   Severity
	suggestion string
}

// Scanner holds precompiled patterns. Construct once, share freely; Scan is
// safe for concurrent use.
type Scanner struct {
	patterns []pattern
}

func NewScanner() *Scanner {
	s := &Scanner{}

	for _, word := range profanityWords {
		s.add(`(?i)\b`+regexp.QuoteMeta(word)+`\b`, IssueProfanity, SeverityBlock,
			"Remove the profanity so the review can be submitted.")
	}
	for _, phrase := range threatPhrases {
		s.add(`(?i)`+phrase, IssueThreat, SeverityBlock,
			"Threatening language is not allowed. Describe what happened instead.")
	}
	for _, phrase := range attackPhrases {
		s.add(`(?i)`+phrase, IssuePersonalAttack, SeverityWarn,
			"Focus on the claim handling rather than the person.")
	}

	s.add(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`, IssuePIIEmail, SeverityWarn,
		"Consider removing the email address; reviews are public.")
	s.add(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`, IssuePIIPhone, SeverityWarn,
		"Consider removing the phone number; reviews are public.")
	s.add(`\b\d{3}-\d{2}-\d{4}\b`, IssuePIISSN, SeverityWarn,
		"Never post a Social Security number in a public review.")

	s.add(`\b[A-Z]{8,}\b`, IssueExcessiveCaps, SeverityInfo,
		"Consider normal capitalization; all-caps reads as shouting.")
	s.add(repeatedRuns, IssueRepeatedChars, SeverityInfo,
		"Repeated characters make the review look like spam.")

	return s
}

func (s *Scanner) add(expr string, t IssueType, sev Severity, suggestion string) {
	s.patterns = append(s.patterns, pattern{
		re:         regexp.MustCompile(expr),
		issueType:  t,
		severity:   sev,
		suggestion: suggestion,
	})
}

// Scan returns every finding in text, in pattern order then span order.
func (s *Scanner) Scan(text string) []Issue {
	if text == "" {
		return nil
	}
	var issues []Issue
	for _, p := range s.patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			issues = append(issues, Issue{
				Type:       p.issueType,
				Severity:   p.severity,
				Start:      loc[0],
				End:        loc[1],
				Suggestion: p.suggestion,
			})
		}
	}
	return issues
}

// Blocked reports whether issues contain any block-severity finding.
func Blocked(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityBlock {
			return true
		}
	}
	return false
}
