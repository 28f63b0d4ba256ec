package wheelerboss

import "testing"

// TestBuildSBWTScenario2 mirrors TestBuildBOSSScenario2 but for the
// select-free SBWT variant, confirming both encodings agree on node rank
// for the same construction (spec.md section 8 Scenario 2).
func TestBuildSBWTScenario2(t *testing.T) {
	idx, err := BuildSBWT([]string{"TACGACGTCGACT"}, 3)
	if err != nil {
		t.Fatalf("BuildSBWT failed: %v", err)
	}

	want := map[string]int{
		"CGA": 1, "GAC": 3, "TAC": 4, "GTC": 5,
		"ACG": 6, "TCG": 7, "ACT": 9, "CGT": 10,
	}
	seen := make(map[int]bool)
	for kmer, rank := range want {
		got, err := idx.Search(kmer)
		if err != nil {
			t.Fatalf("Search(%q) returned error: %v", kmer, err)
		}
		if got != rank {
			t.Errorf("Search(%q) = %d, want %d", kmer, got, rank)
		}
		if seen[got] {
			t.Errorf("rank %d returned for more than one k-mer", got)
		}
		seen[got] = true
	}
}

// TestBuildSBWTScenario3 checks the presence closure for the SBWT variant
// (spec.md section 8 Scenario 3).
func TestBuildSBWTScenario3(t *testing.T) {
	idx, err := BuildSBWT([]string{"ACGT"}, 2)
	if err != nil {
		t.Fatalf("BuildSBWT failed: %v", err)
	}
	for _, kmer := range []string{"AC", "CG", "GT"} {
		rank, err := idx.Search(kmer)
		if err != nil {
			t.Fatalf("Search(%q) returned error: %v", kmer, err)
		}
		if rank == Absent {
			t.Errorf("Search(%q) = absent, want a rank", kmer)
		}
	}
}

// TestBuildSBWTScenario4 mirrors TestBuildBOSSScenario4 for the SBWT
// variant (spec.md section 8 Scenario 4).
func TestBuildSBWTScenario4(t *testing.T) {
	idx, err := BuildSBWT([]string{"AAAA"}, 2)
	if err != nil {
		t.Fatalf("BuildSBWT failed: %v", err)
	}
	if rank, err := idx.Search("AA"); err != nil || rank == Absent {
		t.Fatalf("Search(\"AA\") = (%d, %v), want a rank", rank, err)
	}
	for _, kmer := range []string{"AC", "CC", "GG", "TT"} {
		got, err := idx.Search(kmer)
		if err != nil {
			t.Fatalf("Search(%q) returned error: %v", kmer, err)
		}
		if got != Absent {
			t.Errorf("Search(%q) = %d, want absent", kmer, got)
		}
	}
}

// TestBOSSAndSBWTAgree checks that both encodings of the same input and k
// answer every query identically: each query must get the same rank, or
// Absent, from both (spec.md
// section 9 "Multi-variant core": both variants answer the same query
// contract).
func TestBOSSAndSBWTAgree(t *testing.T) {
	inputs := []string{"TACGACGTCGACT"}
	k := 3

	boss, err := BuildBOSS(inputs, k)
	if err != nil {
		t.Fatalf("BuildBOSS failed: %v", err)
	}
	sbwt, err := BuildSBWT(inputs, k)
	if err != nil {
		t.Fatalf("BuildSBWT failed: %v", err)
	}
	if boss.NNodes() != sbwt.NNodes() {
		t.Fatalf("NNodes mismatch: BOSS=%d SBWT=%d", boss.NNodes(), sbwt.NNodes())
	}

	queries := []string{"CGA", "GAC", "TAC", "GTC", "ACG", "TCG", "ACT", "CGT", "TGA", "GGG"}
	for _, q := range queries {
		br, err := boss.Search(q)
		if err != nil {
			t.Fatalf("BOSS Search(%q) error: %v", q, err)
		}
		sr, err := sbwt.Search(q)
		if err != nil {
			t.Fatalf("SBWT Search(%q) error: %v", q, err)
		}
		if br != sr {
			t.Errorf("Search(%q): BOSS rank=%d, SBWT rank=%d, want equal", q, br, sr)
		}
	}
}
