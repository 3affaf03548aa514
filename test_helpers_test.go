package imobench

import (
	"os"
	"path/filepath"
	"testing"
)

const answerBenchCSV = `Problem ID,Problem,Short Answer,Category,Subcategory,Source
imo-bench-algebra-001,Find all x with x^2=1.,x=1 or x=-1,Algebra,Polynomials,IMO Shortlist 2019
imo-bench-combinatorics-001,Count the subsets of a 5-element set.,32,Combinatorics,Counting,IMO 2001
imo-bench-algebra-002,Solve x+1=3.,x=2,Algebra,Equations,IMO Shortlist 2021
imo-bench-geometry-001,Compute the angle sum of a triangle.,180 degrees,Geometry,Angles,IMO 1960
`

const proofBenchCSV = `Problem ID,Problem,Solution,Grading guidelines,Category,Level,Short Answer,Source
PB-Basic-001,Prove that sqrt(2) is irrational.,Assume p/q in lowest terms and derive a contradiction.,2 points for setup; 5 for the contradiction.,Number theory,IMO-easy,,Classic
PB-Basic-002,Prove AM-GM for two variables.,Expand (a-b)^2 >= 0.,Full credit for any valid proof.,Algebra,pre-IMO,a+b >= 2 sqrt(ab),Folklore
PB-Adv-001,Prove there are infinitely many primes.,Euclid's argument.,7 points for a complete argument.,Number theory,IMO-hard,,Euclid
`

const gradingBenchCSV = `Grading ID,Problem ID,Problem,Solution,Grading guidelines,Response,Points,Reward,Problem Source
GB-0001,PB-Basic-001,Prove that sqrt(2) is irrational.,Assume p/q in lowest terms.,2 points for setup.,Assumes rationality and derives a contradiction.,7,0.7,Classic
GB-0002,PB-Basic-001,Prove that sqrt(2) is irrational.,Assume p/q in lowest terms.,2 points for setup.,Incomplete attempt.,2,0.2,Classic
GB-0003,PB-Basic-002,Prove AM-GM for two variables.,Expand (a-b)^2.,Full credit for any valid proof.,Correct expansion argument.,10,1,Folklore
GB-0004,PB-Adv-001,Prove there are infinitely many primes.,Euclid's argument.,7 points for a complete argument.,Cites Euclid without details.,4,0.4,Euclid
`

// writeDataDir creates a temp data directory containing the given files.
func writeDataDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile %s: %v", name, err)
		}
	}
	return dir
}

// fullDataDir writes all three datasets with valid fixture content.
func fullDataDir(t *testing.T) string {
	t.Helper()
	return writeDataDir(t, map[string]string{
		"answerbench.csv":  answerBenchCSV,
		"proofbench.csv":   proofBenchCSV,
		"gradingbench.csv": gradingBenchCSV,
	})
}

func mustLoader(t *testing.T, dir string) *Loader {
	t.Helper()
	l, err := NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader(%q): %v", dir, err)
	}
	return l
}
