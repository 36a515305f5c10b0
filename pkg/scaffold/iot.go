package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/criticalmanufacturing/cli/pkg/iot"
	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/criticalmanufacturing/cli/pkg/utils"
	"github.com/criticalmanufacturing/cli/pkg/utils/fsx"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// LibraryManifestFileName lists the converters and tasks of a task library
// package.
const LibraryManifestFileName = "library.json"

type IoTRequest struct {
	// Dir is where a driver directory is created, or the root of the task
	// library a converter or task is added to.
	Dir    string
	Force  bool
	DryRun bool
	Logger logger.Logger
}

func (r IoTRequest) logger() logger.Logger {
	if r.Logger == nil {
		return logger.NoopLogger{}
	}
	return r.Logger
}

// GenerateDriver scaffolds a driver package in a new directory under
// req.Dir.
func GenerateDriver(values iot.DriverValues, req IoTRequest) (*Response, error) {
	if values.Identifier == "" || values.PackageName == "" {
		return nil, utils.NewCLIError(utils.ErrorCodeInvalidArgument, "a driver needs an identifier and a package name")
	}
	if !utils.IsDirectoryName(values.Directory) {
		values.Directory = utils.MakeDirectoryName(values.Directory)
	}
	if values.Directory == "" {
		values.Directory = utils.MakeDirectoryName(values.PackageName)
	}
	dir := filepath.Join(req.Dir, values.Directory)
	return renderTree("iotDriver", dir, values, req.Force, req.DryRun, req.logger())
}

// GenerateConverter adds a converter to the task library in req.Dir and
// registers it in the library manifest.
func GenerateConverter(values iot.ConverterValues, req IoTRequest) (*Response, error) {
	if values.Name == "" {
		return nil, utils.NewCLIError(utils.ErrorCodeInvalidArgument, "a converter needs a name")
	}
	if values.Parameters == nil {
		values.Parameters = iot.Parameters{}
	}
	return generateLibraryEntry("iotConverter", values, req, func(lib *iot.TemplateTaskLibrary) error {
		return lib.AddConverter(values)
	})
}

// GenerateTask adds a task to the task library in req.Dir and registers it in
// the library manifest.
func GenerateTask(values iot.TaskValues, req IoTRequest) (*Response, error) {
	if err := values.Validate(); err != nil {
		return nil, utils.WrapCLIError(err, utils.ErrorCodeInvalidArgument, err.Error())
	}
	resp, err := generateLibraryEntry("iotTask", values, req, func(lib *iot.TemplateTaskLibrary) error {
		return lib.AddTask(values)
	})
	if err != nil {
		return nil, err
	}
	for _, port := range untypedPorts(values) {
		req.logger().Warning("The %s has no designer value type and is declared untyped.", port)
	}
	return resp, nil
}

func generateLibraryEntry(template string, values interface{}, req IoTRequest, add func(*iot.TemplateTaskLibrary) error) (*Response, error) {
	l := req.logger()
	dir, err := filepath.Abs(req.Dir)
	if err != nil {
		return nil, errors.Wrap(err, "resolving library directory")
	}
	manifestPath := filepath.Join(dir, LibraryManifestFileName)
	lib, oldManifest, err := readLibrary(manifestPath)
	if err != nil {
		return nil, err
	}
	if err := add(&lib); err != nil {
		return nil, utils.WrapCLIError(err, utils.ErrorCodeInvalidArgument, err.Error())
	}

	plan, err := planTree(template, dir, values, req.Force)
	if err != nil {
		return nil, err
	}
	buf, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling library manifest")
	}
	newManifest := string(buf) + "\n"

	// The manifest is written last so it only lists files that exist.
	if err := plan.write(req.DryRun, l); err != nil {
		return nil, err
	}
	if oldManifest != "" {
		l.Log("\nThe library manifest will be updated:\n%s", manifestDiff(manifestPath, oldManifest, newManifest))
	}
	if !req.DryRun {
		if err := writeFile(manifestPath, []byte(newManifest), 0644); err != nil {
			return nil, plan.rollback(plan.files, errors.Wrapf(err, "writing %s", manifestPath))
		}
	}
	resp := plan.resp
	if oldManifest == "" {
		resp.AddCreatedFile(manifestPath)
		l.Step("Created %s", resp.rel(manifestPath))
	} else {
		resp.AddModifiedFile(manifestPath)
		l.Step("Updated %s", resp.rel(manifestPath))
	}
	return resp, nil
}

// readLibrary loads the manifest and its original text. A missing manifest
// is an empty library with empty text.
func readLibrary(path string) (iot.TemplateTaskLibrary, string, error) {
	lib := iot.NewTemplateTaskLibrary()
	if !fsx.Exists(path) {
		return lib, "", nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return lib, "", errors.Wrapf(err, "reading %s", path)
	}
	if err := json.Unmarshal(jsonc.ToJSON(buf), &lib); err != nil {
		return lib, "", utils.WrapCLIError(err, utils.ErrorCodeInvalidArgument, fmt.Sprintf("parsing %s: %s", path, err))
	}
	if lib.Converters == nil {
		lib.Converters = []iot.ConverterValues{}
	}
	if lib.Tasks == nil {
		lib.Tasks = []iot.TaskValues{}
	}
	return lib, string(buf), nil
}

func manifestDiff(path, before, after string) string {
	edits := myers.ComputeEdits(span.URIFromPath(path), before, after)
	return fmt.Sprint(gotextdiff.ToUnified(path, path+" (updated)", before, edits))
}

func paramJSType(p iot.ParameterType) (string, error) {
	if p.IsEnum() {
		return enumUnion(p.EnumValues, "string"), nil
	}
	return iot.ConvertToJSType(iot.FamilyInputOutput, p.ValueType.String())
}

func settingType(s iot.TaskSetting) (string, error) {
	if s.DataType == iot.DataTypeSettingEnum && len(s.EnumValues) > 0 {
		return enumUnion(s.EnumValues, ""), nil
	}
	return s.DataType.JSType()
}

// portValueType returns the designer value type of a port. Valid data types
// without a designer value type (Long, Decimal, Object, DateTime, Buffer) are
// declared untyped like Any; untypedPorts reports them.
func portValueType(v iot.DataTypeInputOutput) (string, error) {
	if !v.Valid() {
		return "", &iot.UnsupportedValueError{Family: iot.FamilyInputOutput, Value: v.String()}
	}
	t, err := v.TaskValueType()
	var unsupported *iot.UnsupportedValueError
	if errors.As(err, &unsupported) {
		return "undefined", nil
	}
	return t, err
}

// untypedPorts describes the ports of t that portValueType declares untyped
// although their data type is not Any.
func untypedPorts(t iot.TaskValues) []string {
	var out []string
	for _, group := range []struct {
		kind  string
		ports map[string]iot.TaskInputOutputType
	}{
		{"input", t.Inputs},
		{"output", t.Outputs},
	} {
		names := maps.Keys(group.ports)
		slices.Sort(names)
		for _, name := range names {
			dt := group.ports[name].DataType
			if dt == iot.DataTypeInputOutputAny || !dt.Valid() {
				continue
			}
			if _, err := dt.TaskValueType(); err != nil {
				out = append(out, fmt.Sprintf("%s %q (%s)", group.kind, name, dt))
			}
		}
	}
	return out
}

func enumUnion(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, strconv.Quote(v))
	}
	return strings.Join(quoted, " | ")
}
