package store

import (
	"regexp"
	"testing"

	"github.com/abdurrahmanmahmud5981/SoleAmhere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func titleRegex(t *testing.T, filter bson.M) primitive.Regex {
	t.Helper()
	re, ok := filter["title"].(primitive.Regex)
	if !ok {
		t.Fatalf("title filter is %T, want primitive.Regex", filter["title"])
	}
	return re
}

func TestSearchQueryEmptyTextMatchesAll(t *testing.T) {
	filter, opts := searchQuery(models.JobSearch{})

	re := titleRegex(t, filter)
	if re.Pattern != "" {
		t.Errorf("empty search must keep an empty pattern, got %q", re.Pattern)
	}
	if re.Options != "i" {
		t.Errorf("regex options = %q, want i", re.Options)
	}
	if _, ok := filter["category"]; ok {
		t.Error("no category filter expected")
	}
	if opts != nil {
		t.Error("no sort options expected")
	}
}

func TestSearchQueryCategoryAndText(t *testing.T) {
	filter, _ := searchQuery(models.JobSearch{Text: "web", Category: "Web Development"})

	if got := filter["category"]; got != "Web Development" {
		t.Errorf("category = %v, want Web Development", got)
	}
	if re := titleRegex(t, filter); re.Pattern != "web" {
		t.Errorf("pattern = %q, want web", re.Pattern)
	}
}

func TestSearchQueryEscapesRegexMeta(t *testing.T) {
	filter, _ := searchQuery(models.JobSearch{Text: "c++ (junior)"})

	re := titleRegex(t, filter)
	if want := regexp.QuoteMeta("c++ (junior)"); re.Pattern != want {
		t.Errorf("pattern = %q, want %q", re.Pattern, want)
	}
}

func TestSearchQuerySortDirections(t *testing.T) {
	cases := []struct {
		sort string
		want int
	}{
		{"asc", 1},
		{"desc", -1},
	}
	for _, tc := range cases {
		_, opts := searchQuery(models.JobSearch{Sort: tc.sort})
		if opts == nil {
			t.Fatalf("sort %q produced no options", tc.sort)
		}
		sort, ok := opts.Sort.(bson.D)
		if !ok || len(sort) != 1 {
			t.Fatalf("sort %q produced %#v", tc.sort, opts.Sort)
		}
		if sort[0].Key != "deadline" || sort[0].Value != tc.want {
			t.Errorf("sort %q = {%s: %v}, want {deadline: %d}", tc.sort, sort[0].Key, sort[0].Value, tc.want)
		}
	}

	if _, opts := searchQuery(models.JobSearch{Sort: "sideways"}); opts != nil {
		t.Error("unrecognized sort direction must not set options")
	}
}
