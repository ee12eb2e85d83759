package testutil

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoglobals
var shouldUpdate = flag.Bool("update", false, "")

func GetGoldenFilePath(filePath string) string {
	return path.Join("testdata", fmt.Sprintf("%s.json", filePath))
}

// AssertJSONGolden compares actual with testdata/<fileName>.json, run the
// tests with -update to rewrite the file.
func AssertJSONGolden(t *testing.T, fileName string, actual string) {
	t.Helper()

	filePath := GetGoldenFilePath(fileName)
	if *shouldUpdate {
		err := os.WriteFile(filePath, []byte(actual), 0o600)
		if err != nil {
			t.Fatal(errors.Wrap(err, "unable to write goldenfile"))
		}
	}

	var actualValue any
	err := json.Unmarshal([]byte(actual), &actualValue)
	if err != nil {
		t.Fatal(errors.Wrap(err, "unable to unmarshall actual json"))
	}
	var expectedValue any
	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatal(errors.Wrap(err, "unable to read golden file content"))
	}
	err = json.Unmarshal(fileContent, &expectedValue)
	if err != nil {
		t.Fatal(errors.Wrap(err, "unable to unmarshall goldenfile json"))
	}
	require.Equal(t, expectedValue, actualValue)
}
