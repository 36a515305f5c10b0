package packages

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blang/semver"
	"github.com/criticalmanufacturing/cli/pkg/utils"
	"github.com/criticalmanufacturing/cli/pkg/utils/fsx"
	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
)

// FileName is the package descriptor every package directory carries.
const FileName = "cmfpackage.json"

type PackageType string

const (
	PackageTypeRoot         PackageType = "Root"
	PackageTypeBusiness     PackageType = "Business"
	PackageTypePresentation PackageType = "Presentation"
	PackageTypeHTML         PackageType = "Html"
	PackageTypeIoT          PackageType = "IoT"
	PackageTypeData         PackageType = "Data"
)

type StepType string

const (
	StepTypeDeployFiles           StepType = "DeployFiles"
	StepTypeDeployRepositoryFiles StepType = "DeployRepositoryFiles"
	StepTypeTransformFile         StepType = "TransformFile"
	StepTypeEnqueueSql            StepType = "EnqueueSql"
	StepTypeMasterData            StepType = "MasterData"
)

// Step is a deployment step run when the package is installed.
type Step struct {
	Type        StepType `json:"type"`
	Title       string   `json:"title,omitempty"`
	ContentPath string   `json:"contentPath,omitempty"`
	File        string   `json:"file,omitempty"`
}

type Dependency struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

// ArchiveName is the file name a built dependency is published under.
func (d Dependency) ArchiveName() string {
	return d.ID + "." + d.Version + ".zip"
}

func (d Dependency) String() string {
	return d.ID + "@" + d.Version
}

// CmfPackage is the content of a cmfpackage.json descriptor.
type CmfPackage struct {
	PackageID       string       `json:"packageId"`
	Version         string       `json:"version"`
	Description     string       `json:"description,omitempty"`
	PackageType     PackageType  `json:"packageType"`
	DFPackageType   PackageType  `json:"dfPackageType,omitempty"`
	TargetDirectory string       `json:"targetDirectory,omitempty"`
	TargetLayer     string       `json:"targetLayer,omitempty"`
	Steps           []Step       `json:"steps,omitempty"`
	Dependencies    []Dependency `json:"dependencies,omitempty"`

	// Path is the descriptor file the package was loaded from.
	Path string `json:"-"`
}

// Directory returns the package root.
func (p *CmfPackage) Directory() string {
	return filepath.Dir(p.Path)
}

// SetDefaultValues fills the target metadata. Fields the descriptor already
// declares are kept.
func (p *CmfPackage) SetDefaultValues(targetDirectory, targetLayer string, steps []Step) {
	if p.TargetDirectory == "" {
		p.TargetDirectory = targetDirectory
	}
	if p.TargetLayer == "" {
		p.TargetLayer = targetLayer
	}
	if len(p.Steps) == 0 && len(steps) > 0 {
		p.Steps = append([]Step(nil), steps...)
	}
}

// Validate checks the fields every package must declare.
func (p *CmfPackage) Validate() error {
	if p.PackageID == "" {
		return utils.NewCLIErrorf(utils.ErrorCodeInvalidArgument, "%s: packageId is required", p.Path)
	}
	if _, err := semver.Parse(p.Version); err != nil {
		return utils.WrapCLIError(err, utils.ErrorCodeInvalidArgument,
			fmt.Sprintf("invalid version %q for package %s", p.Version, p.PackageID))
	}
	if p.PackageType == "" {
		return utils.NewCLIErrorf(utils.ErrorCodeInvalidArgument, "%s: packageType is required", p.PackageID)
	}
	for _, d := range p.Dependencies {
		if d.ID == "" || d.Version == "" {
			return utils.NewCLIErrorf(utils.ErrorCodeInvalidArgument, "%s: dependencies need an id and a version", p.PackageID)
		}
	}
	return nil
}

// Load reads a package descriptor. path may be the descriptor itself or the
// package directory. Comments and trailing commas are tolerated.
func Load(path string) (*CmfPackage, error) {
	if fsx.IsDir(path) {
		path = filepath.Join(path, FileName)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolving package path")
	}

	buf, err := os.ReadFile(abs)
	if errors.Is(err, os.ErrNotExist) {
		return nil, utils.NewCLIErrorf(utils.ErrorCodeInvalidArgument, "no %s found at %s", FileName, filepath.Dir(abs))
	} else if err != nil {
		return nil, errors.Wrapf(err, "reading %s", abs)
	}

	var pkg CmfPackage
	if err := json.Unmarshal(jsonc.ToJSON(buf), &pkg); err != nil {
		return nil, utils.WrapCLIError(err, utils.ErrorCodeInvalidArgument, "parsing "+abs+": "+err.Error())
	}
	pkg.Path = abs
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// Find loads the descriptor of the package containing dir.
func Find(dir string) (*CmfPackage, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "resolving directory")
	}
	path, ok := fsx.Find(dir, FileName)
	if !ok {
		return nil, utils.NewCLIErrorf(utils.ErrorCodeInvalidArgument, "%s is not inside a package: no %s found", dir, FileName)
	}
	return Load(filepath.Join(path, FileName))
}

// Save writes the descriptor back to Path.
func (p *CmfPackage) Save() error {
	if p.Path == "" {
		return errors.New("package has no path")
	}
	buf, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling package")
	}
	return errors.Wrapf(os.WriteFile(p.Path, append(buf, '\n'), 0644), "writing %s", p.Path)
}
