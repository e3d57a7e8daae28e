package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findIssue(issues []Issue, t IssueType) *Issue {
	for i := range issues {
		if issues[i].Type == t {
			return &issues[i]
		}
	}
	return nil
}

func TestScan_CleanText(t *testing.T) {
	s := NewScanner()
	issues := s.Scan("The adjuster inspected the roof damage within a week and approved the claim.")
	assert.Empty(t, issues)
	assert.False(t, Blocked(issues))
}

func TestScan_ProfanityBlocks(t *testing.T) {
	s := NewScanner()
	issues := s.Scan("This was a fucking nightmare from start to finish.")

	issue := findIssue(issues, IssueProfanity)
	require.NotNil(t, issue)
	assert.Equal(t, SeverityBlock, issue.Severity)
	assert.True(t, Blocked(issues))
}

func TestScan_ThreatBlocks(t *testing.T) {
	s := NewScanner()
	issues := s.Scan("Deny my claim again and I will find you.")

	issue := findIssue(issues, IssueThreat)
	require.NotNil(t, issue)
	assert.Equal(t, SeverityBlock, issue.Severity)
}

func TestScan_PersonalAttackWarns(t *testing.T) {
	s := NewScanner()
	issues := s.Scan("You are a liar and everyone should know it.")

	issue := findIssue(issues, IssuePersonalAttack)
	require.NotNil(t, issue)
	assert.Equal(t, SeverityWarn, issue.Severity)
	assert.False(t, Blocked(issues))
}

func TestScan_PIIWarnsWithSpan(t *testing.T) {
	s := NewScanner()
	text := "Contact me at jane@example.com for details."
	issues := s.Scan(text)

	issue := findIssue(issues, IssuePIIEmail)
	require.NotNil(t, issue)
	assert.Equal(t, SeverityWarn, issue.Severity)
	assert.Equal(t, "jane@example.com", text[issue.Start:issue.End])
}

func TestScan_PhoneAndSSN(t *testing.T) {
	s := NewScanner()

	issues := s.Scan("Call me at 555-867-5309 about this.")
	assert.NotNil(t, findIssue(issues, IssuePIIPhone))

	issues = s.Scan("They asked for my SSN 123-45-6789 over email.")
	assert.NotNil(t, findIssue(issues, IssuePIISSN))
}

func TestScan_InfoFindings(t *testing.T) {
	s := NewScanner()

	issues := s.Scan("They NEVERRRRR answered the phone.")
	issue := findIssue(issues, IssueRepeatedChars)
	require.NotNil(t, issue)
	assert.Equal(t, SeverityInfo, issue.Severity)
	assert.False(t, Blocked(issues))

	issues = s.Scan("ABSOLUTELY the worst experience.")
	issue = findIssue(issues, IssueExcessiveCaps)
	require.NotNil(t, issue)
	assert.Equal(t, SeverityInfo, issue.Severity)
}

func TestScan_RepeatedCharRuns(t *testing.T) {
	s := NewScanner()

	for _, text := range []string{
		"The worst experience everrrrr.",
		"Still waiting.....",
		"Unbelievable!!!!!",
	} {
		issues := s.Scan(text)
		assert.NotNil(t, findIssue(issues, IssueRepeatedChars), "text %q", text)
	}

	issues := s.Scan("A so-so experience, nothing more.")
	assert.Nil(t, findIssue(issues, IssueRepeatedChars))
}

func TestScan_EverySuggestionPopulated(t *testing.T) {
	s := NewScanner()
	issues := s.Scan("you are an idiot, email me at a@b.co, call 555-123-4567, NIGHTMARE!!!!!")
	require.NotEmpty(t, issues)
	for _, issue := range issues {
		assert.NotEmpty(t, issue.Suggestion, "issue %s", issue.Type)
		assert.Less(t, issue.Start, issue.End)
	}
}
