package subscription

import (
	"testing"

	"yomiage/internal/lang"
)

func TestSubscribeAndQuery(t *testing.T) {
	tbl := NewTable()

	if tbl.IsSubscribed("c1") {
		t.Fatalf("fresh table should have no subscriptions")
	}
	if existed := tbl.Subscribe("c1", "g1", "en-US"); existed {
		t.Fatalf("first subscribe reported existing entry")
	}
	if !tbl.IsSubscribed("c1") {
		t.Fatalf("c1 should be subscribed")
	}
	if got := tbl.LanguageOf("c1"); got != "en-US" {
		t.Errorf("language = %s, want en-US", got)
	}
}

func TestSubscribeUpdatesLanguageInPlace(t *testing.T) {
	tbl := NewTable()
	tbl.Subscribe("c1", "g1", "ja-JP")

	if existed := tbl.Subscribe("c1", "g1", "ko-KR"); !existed {
		t.Fatalf("second subscribe should report existing entry")
	}
	if got := tbl.LanguageOf("c1"); got != "ko-KR" {
		t.Errorf("language = %s, want ko-KR", got)
	}
	if n := tbl.GuildCount("g1"); n != 1 {
		t.Errorf("guild count = %d, want 1 (update must not add entries)", n)
	}
}

func TestLanguageOfDefault(t *testing.T) {
	tbl := NewTable()
	if got := tbl.LanguageOf("unknown"); got != lang.Default {
		t.Errorf("unsubscribed channel language = %s, want default %s", got, lang.Default)
	}
}

func TestUnsubscribe(t *testing.T) {
	tbl := NewTable()
	tbl.Subscribe("c1", "g1", "ja-JP")
	tbl.Subscribe("c2", "g1", "en-US")

	if removed := tbl.Unsubscribe("c1"); !removed {
		t.Fatalf("expected c1 removal to report success")
	}
	if tbl.IsSubscribed("c1") {
		t.Errorf("c1 still subscribed after unsubscribe")
	}
	if n := tbl.GuildCount("g1"); n != 1 {
		t.Errorf("guild count = %d, want 1", n)
	}
	if removed := tbl.Unsubscribe("c1"); removed {
		t.Errorf("second unsubscribe should report no entry")
	}
}

func TestGuildCountAcrossGuilds(t *testing.T) {
	tbl := NewTable()
	tbl.Subscribe("c1", "g1", "ja-JP")
	tbl.Subscribe("c2", "g1", "ja-JP")
	tbl.Subscribe("c3", "g2", "ja-JP")

	if n := tbl.GuildCount("g1"); n != 2 {
		t.Errorf("g1 count = %d, want 2", n)
	}
	if n := tbl.GuildCount("g2"); n != 1 {
		t.Errorf("g2 count = %d, want 1", n)
	}
	if n := tbl.GuildCount("g3"); n != 0 {
		t.Errorf("g3 count = %d, want 0", n)
	}
}
