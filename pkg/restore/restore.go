package restore

import (
	"context"
	"os"
	"path/filepath"

	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/criticalmanufacturing/cli/pkg/packages"
	"github.com/criticalmanufacturing/cli/pkg/utils"
	"github.com/criticalmanufacturing/cli/pkg/utils/fsx"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// DependenciesDir is where restored dependency archives are placed, relative
// to the package root.
const DependenciesDir = "Dependencies"

type Request struct {
	Package *packages.CmfPackage
	// Repositories are searched in order; the first one holding an archive
	// wins.
	Repositories []string
	Logger       logger.Logger
}

type Restored struct {
	Dependency packages.Dependency
	Source     string
	Size       int64
}

type Response struct {
	Restored []Restored
}

// MissingDependencyError is reported for a dependency no repository holds.
type MissingDependencyError struct {
	Dependency packages.Dependency
}

func (e MissingDependencyError) Error() string {
	return "dependency " + e.Dependency.String() + " not found in any repository"
}

// Run copies every declared dependency archive of the package into its
// Dependencies directory. All dependencies are attempted; failures are
// reported together.
func Run(ctx context.Context, req Request) (Response, error) {
	l := req.Logger
	if l == nil {
		l = logger.NoopLogger{}
	}
	pkg := req.Package
	if len(pkg.Dependencies) == 0 {
		l.Debug("%s has no dependencies to restore", pkg.PackageID)
		return Response{}, nil
	}
	if len(req.Repositories) == 0 {
		return Response{}, utils.WithExplanation(
			utils.NewCLIErrorf(utils.ErrorCodeInvalidArgument, "%s has dependencies but no repositories are configured", pkg.PackageID),
			"Pass --repo <dir>, set CMF_REPOSITORIES, or add repositories to the project config.",
		)
	}

	target := filepath.Join(pkg.Directory(), DependenciesDir)
	var resp Response
	var errs error
	for _, dep := range pkg.Dependencies {
		if err := ctx.Err(); err != nil {
			return resp, err
		}
		source, ok := locate(req.Repositories, dep)
		if !ok {
			errs = multierr.Append(errs, MissingDependencyError{Dependency: dep})
			continue
		}
		n, err := utils.CopyFile(source, target)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "restoring %s", dep))
			continue
		}
		l.Step("Restored %s (%s) from %s", dep, humanize.Bytes(uint64(n)), filepath.Dir(source))
		resp.Restored = append(resp.Restored, Restored{Dependency: dep, Source: source, Size: n})
	}
	return resp, errs
}

func locate(repositories []string, dep packages.Dependency) (string, bool) {
	for _, repo := range repositories {
		path := filepath.Join(repo, dep.ArchiveName())
		if fsx.Exists(path) {
			return path, true
		}
	}
	return "", false
}

// Clean removes previously restored archives.
func Clean(pkg *packages.CmfPackage) error {
	return errors.Wrap(os.RemoveAll(filepath.Join(pkg.Directory(), DependenciesDir)), "cleaning dependencies")
}
