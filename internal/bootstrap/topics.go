package bootstrap

import (
	"github.com/google/uuid"

	"brightside-be/internal/entity"
)

// builtinDebateTopics is the catalog every user sees. Ids are fixed so
// clients can deep-link to a topic across restarts.
func builtinDebateTopics() []*entity.DebateTopic {
	return []*entity.DebateTopic{
		{
			Id:               uuid.MustParse("11111111-0000-0000-0000-000000000001"),
			Title:            "Should AI Development Be Regulated?",
			Description:      "Debate whether governments should impose strict regulations on AI development.",
			ForArguments:     []string{"Prevents misuse", "Ensures ethical development", "Protects public safety"},
			AgainstArguments: []string{"Stifles innovation", "Hard to implement globally", "Self-regulation is sufficient"},
		},
		{
			Id:               uuid.MustParse("11111111-0000-0000-0000-000000000002"),
			Title:            "Nuclear Energy vs. Renewable Energy",
			Description:      "Debate whether nuclear energy should be prioritized over other renewable sources.",
			ForArguments:     []string{"Higher energy density", "Lower land footprint", "Consistent power generation"},
			AgainstArguments: []string{"Waste management issues", "Safety concerns", "High initial investment"},
		},
		{
			Id:               uuid.MustParse("11111111-0000-0000-0000-000000000003"),
			Title:            "Remote Work Should Be the Standard",
			Description:      "Debate whether companies should make remote work the default option.",
			ForArguments:     []string{"Better work-life balance", "Reduced commute pollution", "Access to global talent"},
			AgainstArguments: []string{"Decreased collaboration", "Isolation issues", "Infrastructure inequality"},
		},
		{
			Id:               uuid.MustParse("11111111-0000-0000-0000-000000000004"),
			Title:            "Social Media: Net Positive or Negative?",
			Description:      "Debate whether social media has been beneficial or harmful for society.",
			ForArguments:     []string{"Global connectivity", "Information sharing", "Support communities"},
			AgainstArguments: []string{"Mental health issues", "Privacy concerns", "Misinformation spread"},
		},
		{
			Id:               uuid.MustParse("11111111-0000-0000-0000-000000000005"),
			Title:            "Space Exploration vs. Earth Problems",
			Description:      "Debate whether we should focus more resources on space exploration or solving Earth's problems.",
			ForArguments:     []string{"Technological innovation", "Human species survival", "Scientific discoveries"},
			AgainstArguments: []string{"Immediate Earth crises", "High costs", "Benefit primarily wealthy nations"},
		},
		{
			Id:               uuid.MustParse("11111111-0000-0000-0000-000000000006"),
			Title:            "Universal Basic Income",
			Description:      "Debate whether governments should implement universal basic income.",
			ForArguments:     []string{"Poverty reduction", "Economic stability", "Adaptation to automation"},
			AgainstArguments: []string{"Cost concerns", "Reduced incentive to work", "Inflation risks"},
		},
	}
}
