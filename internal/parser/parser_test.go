package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/parser"
)

func TestParse_PayoutExtraction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"decimal amount", "Quick delivery $12.50", "12.50"},
		{"integer amount", "Pays $15 flat", "15"},
		{"largest of several wins", "Base $8.00 guaranteed, up to $12.50 total", "12.50"},
		{"no amount", "No pay mentioned here", "0"},
		{"empty text", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := parser.Parse(tt.text, "")
			assert.Equal(t, tt.want, draft.Payout)
		})
	}
}

func TestParse_AddressExtraction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"street address", "Drop off at 123 Main St today", "123 Main St"},
		{"street beats landmark", "Visit Northgate Mall at 123 Main St", "123 Main St"},
		{"landmark", "Northgate Mall\n$10", "Northgate Mall"},
		{"nothing address-like", "Just a task, $5", "Job location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := parser.Parse(tt.text, "")
			assert.Equal(t, tt.want, draft.Address)
		})
	}
}

func TestParse_ManualDefaults(t *testing.T) {
	draft := parser.Parse("", "")

	assert.Equal(t, "Parsed Job", draft.Title)
	assert.Equal(t, "Parsed from clipboard text", draft.Description)
	assert.Equal(t, domain.PlatformManual, draft.Platform)
	assert.Equal(t, "clipboard", draft.Source)
	assert.Equal(t, "0", draft.Payout)
	assert.Equal(t, "Job location", draft.Address)
	assert.Equal(t, domain.DefaultDurationMinutes, draft.EstimatedDuration)
}

func TestParse_UnknownPlatformKept(t *testing.T) {
	draft := parser.Parse("Deliver package\n$5.00", "gigfinder")

	assert.Equal(t, "gigfinder", draft.Platform)
	assert.Equal(t, "Deliver package", draft.Title)
	assert.Equal(t, "Parsed from gigfinder text", draft.Description)
	assert.Equal(t, "5.00", draft.Payout)
	assert.Equal(t, domain.DefaultDurationMinutes, draft.EstimatedDuration)
}

func TestParse_Instacart(t *testing.T) {
	draft := parser.Parse("Instacart batch: Whole Foods, 12 items\n$27.50 estimated", domain.PlatformInstacart)

	assert.Equal(t, "Grocery Delivery - Whole Foods (12 items)", draft.Title)
	assert.Equal(t, "Grocery shopping and delivery", draft.Description)
	assert.Equal(t, "27.50", draft.Payout)
	// 2 minutes per item plus the 15-minute base.
	assert.Equal(t, 39, draft.EstimatedDuration)
	assert.Equal(t, "Local grocery store", draft.Address)
}

func TestParse_InstacartDurationClamped(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no item count", "Costco batch", 45},
		{"small batch floors at fifteen", "0 items", 15},
		{"large batch caps at sixty", "40 items, heavy", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := parser.Parse(tt.text, domain.PlatformInstacart)
			assert.Equal(t, tt.want, draft.EstimatedDuration)
		})
	}
}

func TestParse_InstacartFeaturesJoined(t *testing.T) {
	draft := parser.Parse("heavy case of organic produce, 10 items", domain.PlatformInstacart)
	assert.Equal(t, "Heavy items • Organic products", draft.Description)
}

func TestParse_DoorDash(t *testing.T) {
	draft := parser.Parse("Pickup from Chipotle\n$9.75", domain.PlatformDoorDash)

	assert.Equal(t, "Restaurant Pickup - Chipotle", draft.Title)
	assert.Equal(t, "Food pickup and delivery", draft.Description)
	assert.Equal(t, 25, draft.EstimatedDuration)
	assert.Equal(t, "Restaurant pickup location", draft.Address)
}

func TestParse_Uber(t *testing.T) {
	draft := parser.Parse("McDonald's order, quick grab\n$6.50", domain.PlatformUber)

	assert.Equal(t, "Fast Food - McDonald's", draft.Title)
	assert.Equal(t, "Quick pickup", draft.Description)
	assert.Equal(t, 20, draft.EstimatedDuration)
}

func TestParse_AuditPlatforms(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		platform     string
		wantTitle    string
		wantDuration int
	}{
		{"epms walmart", "Walmart visit with photo documentation\n$22", domain.PlatformEPMS, "Walmart Store Audit", 45},
		{"epms fallback", "unspecified task", domain.PlatformEPMS, "EPMS Store Audit", 45},
		{"fieldagent starbucks", "starbucks drink check", domain.PlatformFieldAgent, "Starbucks Experience Audit", 30},
		{"ellis hotel", "hotel front desk evaluation", domain.PlatformEllis, "Hotel Service Evaluation", 60},
		{"alt360 survey", "customer survey outside entrance", domain.PlatformAlt360, "Customer Survey Collection", 35},
		{"presto pharmacy", "pharmacy run for client", domain.PlatformPrestoShopper, "Pharmacy Shopping Task", 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := parser.Parse(tt.text, tt.platform)
			assert.Equal(t, tt.wantTitle, draft.Title)
			assert.Equal(t, tt.wantDuration, draft.EstimatedDuration)
		})
	}
}

func TestParse_TitleTruncated(t *testing.T) {
	draft := parser.Parse(strings.Repeat("a", 150), "")
	assert.Len(t, []rune(draft.Title), 100)
}

func TestParse_NeverFails(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t\n   ",
		"$$$",
		"\x00\x01\x02\xff",
		strings.Repeat("x$9 ", 500),
	}
	platforms := []string{"", "instacart", "doordash", "nonsense"}

	for _, text := range inputs {
		for _, platform := range platforms {
			draft := parser.Parse(text, platform)
			require.NotEmpty(t, draft.Title)
			require.NotEmpty(t, draft.Description)
			require.NotEmpty(t, draft.Address)
			require.NotEmpty(t, draft.Payout)
			require.NotEmpty(t, draft.Platform)
			require.Positive(t, draft.EstimatedDuration)
		}
	}
}
