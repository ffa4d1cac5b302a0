package layout

import "testing"

func TestLexiconClassify(t *testing.T) {
	lex := NewLexicon(DefaultConfig().StickyWords, DefaultConfig().SlipperyWords)
	tests := []struct {
		token string
		want  Surface
	}{
		{"ice", SurfaceSlippery},
		{"Ice,", SurfaceSlippery},
		{"ICES", SurfaceSlippery},
		{"glue", SurfaceSticky},
		{"(glues)", SurfaceSticky},
		{"nets", SurfaceSticky},
		{"Greek", SurfaceSlippery},
		{"xyzzy", SurfaceNormal},
		{"...", SurfaceNormal},
		{"", SurfaceNormal},
	}
	for _, tt := range tests {
		if got := lex.Classify(tt.token); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestLexiconStickyWins(t *testing.T) {
	lex := NewLexicon([]string{"Tar"}, []string{"tar"})
	if got := lex.Classify("tar"); got != SurfaceSticky {
		t.Errorf("Classify(tar) = %v, want sticky", got)
	}
}
