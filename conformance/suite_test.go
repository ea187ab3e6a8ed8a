package conformance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mvandenberg/sc1emu/conformance"
	"github.com/mvandenberg/sc1emu/test"
)

// ldaImmediateVector is a hand-built single-step vector for the 6809's
// LDA #$00 (opcode 0x86), exercising the whole Suite/Adapter pipeline
// without depending on a real downloaded vector set.
const ldaImmediateVector = `[
	{
		"name": "86 0 0",
		"initial": {"pc": 0, "a": 255, "b": 0, "dp": 0, "x": 0, "y": 0, "u": 0, "s": 0, "cc": 0,
			"ram": [[0, 134], [1, 0]]},
		"final": {"pc": 2, "a": 0, "b": 0, "dp": 0, "x": 0, "y": 0, "u": 0, "s": 0, "cc": 4,
			"ram": [[0, 134], [1, 0]]},
		"cycles": [[0, 134, "read"], [1, 0, "read"]]
	}
]`

func writeVectorFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "86.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFileReportsNoMismatchesForAMatchingVector(t *testing.T) {
	path := writeVectorFile(t, ldaImmediateVector)

	suite := conformance.NewSuite(func() conformance.Adapter { return conformance.NewM6809Adapter() })
	results, err := suite.RunFile(path)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(results), 1)

	if !results[0].Passed() {
		t.Errorf("expected the vector to pass, got mismatches: %+v", results[0].Mismatches)
	}
}

func TestRunFileReportsMismatchesForAWrongVector(t *testing.T) {
	wrong := `[
		{
			"name": "86 0 0 wrong",
			"initial": {"pc": 0, "a": 255, "cc": 0, "ram": [[0, 134], [1, 0]]},
			"final": {"pc": 2, "a": 99, "cc": 4, "ram": [[0, 134], [1, 0]]},
			"cycles": [[0, 134, "read"], [1, 0, "read"]]
		}
	]`
	path := writeVectorFile(t, wrong)

	suite := conformance.NewSuite(func() conformance.Adapter { return conformance.NewM6809Adapter() })
	results, err := suite.RunFile(path)
	test.DemandSuccess(t, err)

	test.DemandFailure(t, results[0].Passed())

	found := false
	for _, m := range results[0].Mismatches {
		if m.Field == "a" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an 'a' register mismatch, got %+v", results[0].Mismatches)
	}
}

func TestRunFileReportsAMissingFileAsAVectorFileError(t *testing.T) {
	suite := conformance.NewSuite(func() conformance.Adapter { return conformance.NewM6809Adapter() })
	_, err := suite.RunFile(filepath.Join(t.TempDir(), "does-not-exist.json"))
	test.DemandFailure(t, err)
}

func TestRunDirFansOutAcrossMultipleVectorFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(ldaImmediateVector), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	suite := conformance.NewSuite(func() conformance.Adapter { return conformance.NewM6809Adapter() })
	results, err := suite.RunDir(dir)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(results), 2)
}
