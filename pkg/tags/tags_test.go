package tags

import "testing"

func TestGenerate_Empty(t *testing.T) {
	if got := Generate(""); got != nil {
		t.Errorf("Generate(\"\") = %v, want nil", got)
	}
	if got := Generate("   \n"); got != nil {
		t.Errorf("Generate(whitespace) = %v, want nil", got)
	}
}

func TestGenerate_RepeatedNounRanksFirst(t *testing.T) {
	text := "The telescope captured images. The telescope tracked stars. " +
		"The telescope survived storms. The telescope impressed astronomers. " +
		"It was and is there."
	got := Generate(text)

	if len(got) == 0 {
		t.Fatal("Generate returned no tags")
	}
	if got[0] != "telescope" {
		t.Errorf("top tag = %q, want %q (most frequent noun)", got[0], "telescope")
	}
}

func TestGenerate_IncludesNamedEntities(t *testing.T) {
	text := "Google announced a new datacenter in Belgium. " +
		"Google expects the datacenter to open next spring."
	got := Generate(text)

	found := false
	for _, tag := range got {
		if tag == "Google" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("tags %v missing named entity %q", got, "Google")
	}
}

func TestGenerate_CapsAtMaxTags(t *testing.T) {
	// Build a text with far more than MaxTags distinct nouns.
	text := ""
	nouns := []string{
		"apple", "banana", "cherry", "donkey", "engine", "forest", "guitar",
		"hammer", "island", "jacket", "kitten", "ladder", "magnet", "needle",
		"orange", "pencil", "quartz", "rabbit", "saddle", "tunnel", "umbrella",
		"violin", "walnut", "xylophone", "yogurt", "zipper", "anchor", "bottle",
		"candle", "dollar",
	}
	for _, n := range nouns {
		text += "The " + n + " sat on the table. "
	}

	got := Generate(text)
	if len(got) > MaxTags {
		t.Errorf("Generate returned %d tags, want <= %d", len(got), MaxTags)
	}
}

func TestGenerate_FiltersShortAndStopwords(t *testing.T) {
	got := Generate("An ox ran far. The ox is an ox.")
	for _, tag := range got {
		if len([]rune(tag)) <= 2 {
			t.Errorf("tag %q shorter than 3 characters", tag)
		}
	}
}
