package speech

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// requiredOptionNames collects the names of a definition's required options.
func requiredOptionNames(def *discordgo.ApplicationCommand) []string {
	var names []string
	for _, opt := range def.Options {
		if opt.Required {
			names = append(names, opt.Name)
		}
	}
	return names
}

func TestSlashDefinitionOptions(t *testing.T) {
	cases := []struct {
		def          *discordgo.ApplicationCommand
		wantRequired []string
	}{
		{(&HelloCommand{}).SlashDefinition(), nil},
		{(&SpeakCommand{}).SlashDefinition(), []string{"message"}},
		{(&SpeedCommand{}).SlashDefinition(), []string{"rate"}},
		{(&VolumeCommand{}).SlashDefinition(), []string{"level"}},
		{(&ListenCommand{}).SlashDefinition(), []string{"channel"}},
		{(&StopCommand{}).SlashDefinition(), []string{"channel"}},
	}
	for _, tc := range cases {
		got := requiredOptionNames(tc.def)
		if len(got) != len(tc.wantRequired) {
			t.Errorf("%s: required options = %v, want %v", tc.def.Name, got, tc.wantRequired)
			continue
		}
		for i := range got {
			if got[i] != tc.wantRequired[i] {
				t.Errorf("%s: required option %d = %s, want %s", tc.def.Name, i, got[i], tc.wantRequired[i])
			}
		}
	}
}

func TestContextDefinitionsArePerLanguage(t *testing.T) {
	jp := (&ReadAloudCommand{Language: "ja-JP"}).ContextDefinition()
	en := (&ReadAloudCommand{Language: "en-US"}).ContextDefinition()

	if jp.Type != discordgo.MessageApplicationCommand || en.Type != discordgo.MessageApplicationCommand {
		t.Fatalf("context menus must be message commands")
	}
	if jp.Name == en.Name {
		t.Errorf("per-language menus share a name: %s", jp.Name)
	}
}
