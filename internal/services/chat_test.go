package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatReplyBranches(t *testing.T) {
	chat := NewChatService()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "mca summary",
			message: "Help me write a summary for my MCA degree",
			want:    "MCA Summary (Experienced)",
		},
		{
			name:    "bca summary",
			message: "objective for BCA fresher",
			want:    "BCA Summary (Experienced)",
		},
		{
			name:    "sales summary",
			message: "profile for sales roles",
			want:    "Sales Summary (Experienced)",
		},
		{
			name:    "mca skills",
			message: "what skills should an MCA graduate learn",
			want:    "MCA Skill Focus",
		},
		{
			name:    "fresher skills",
			message: "skills for a fresher",
			want:    "Fresher Skill Roadmap",
		},
		{
			name:    "experienced skills default",
			message: "which technical skills matter",
			want:    "Experienced Skills by Role",
		},
		{
			name:    "fresher summary template",
			message: "summary for a fresher please",
			want:    "Fresher Summary Template",
		},
		{
			name:    "experienced summary template",
			message: "improve my profile section",
			want:    "Experienced Summary Template",
		},
		{
			name:    "ats tips",
			message: "how do I improve my ATS score",
			want:    "ATS Optimization Tips",
		},
		{
			name:    "job search",
			message: "interview preparation advice",
			want:    "Job Search Strategy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := chat.Reply(tt.message, "")
			assert.Contains(t, reply, tt.want)
		})
	}
}

func TestChatReplyDefault(t *testing.T) {
	chat := NewChatService()

	t.Run("echoes the message", func(t *testing.T) {
		reply := chat.Reply("tell me a joke", "")
		assert.Contains(t, reply, "'tell me a joke'")
		assert.Contains(t, reply, "No resume analysis available")
	})

	t.Run("includes analysis context when present", func(t *testing.T) {
		reply := chat.Reply("tell me a joke", "User's resume analysis: ATS Score: 72/100")
		assert.Contains(t, reply, "ATS Score: 72/100")
		assert.NotContains(t, reply, "No resume analysis available")
	})
}

func TestChatReplyCaseInsensitive(t *testing.T) {
	chat := NewChatService()
	assert.Contains(t, chat.Reply("ATS SCORE HELP", ""), "ATS Optimization Tips")
}
