package scaffold

import (
	"embed"
	"encoding/json"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/criticalmanufacturing/cli/pkg/iot"
	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/criticalmanufacturing/cli/pkg/utils"
	"github.com/criticalmanufacturing/cli/pkg/utils/fsx"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

//go:embed all:templates
var templatesFS embed.FS

// templateSuffix marks files rendered with text/template. Other files are
// copied verbatim.
const templateSuffix = ".tmpl"

// ArgsGenerator turns the raw arguments of a `new` command into the
// arguments handed to a layer template.
type ArgsGenerator interface {
	GenerateArgs(projectRoot, workingDir string, args []string) ([]string, error)
}

// LayerTemplateCommand scaffolds one layer of a project from an embedded
// template tree.
type LayerTemplateCommand struct {
	// Template is the directory under templates/.
	Template string
	Args     ArgsGenerator
	// Defaults returns the data used for keys the arguments do not set.
	Defaults func(projectRoot, workingDir string) map[string]interface{}
}

type RenderRequest struct {
	ProjectRoot string
	WorkingDir  string
	Args        []string
	// Force overwrites files that already exist.
	Force  bool
	DryRun bool
	Logger logger.Logger
}

// Render writes the template tree into the working directory.
func (c LayerTemplateCommand) Render(req RenderRequest) (*Response, error) {
	l := req.Logger
	if l == nil {
		l = logger.NoopLogger{}
	}
	args := req.Args
	if c.Args != nil {
		var err error
		if args, err = c.Args.GenerateArgs(req.ProjectRoot, req.WorkingDir, req.Args); err != nil {
			return nil, err
		}
	}
	data, err := ParseTemplateArgs(args)
	if err != nil {
		return nil, err
	}
	if c.Defaults != nil {
		for k, v := range c.Defaults(req.ProjectRoot, req.WorkingDir) {
			if _, ok := data[k]; !ok {
				data[k] = v
			}
		}
	}
	return renderTree(c.Template, req.WorkingDir, data, req.Force, req.DryRun, l)
}

// ParseTemplateArgs turns `--key value` pairs into template data. A key with
// no value (`--flag`) is true.
func ParseTemplateArgs(args []string) (map[string]interface{}, error) {
	data := map[string]interface{}{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") || len(arg) == 2 {
			return nil, utils.NewCLIErrorf(utils.ErrorCodeInvalidArgument, "unexpected template argument %q, expected --name [value]", arg)
		}
		key := strings.TrimPrefix(arg, "--")
		if k, v, ok := strings.Cut(key, "="); ok {
			data[strcase.ToLowerCamel(k)] = v
			continue
		}
		key = strcase.ToLowerCamel(key)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
			data[key] = args[i+1]
			i++
			continue
		}
		data[key] = true
	}
	return data, nil
}

var funcs = template.FuncMap{
	"camel":  strcase.ToLowerCamel,
	"pascal": strcase.ToCamel,
	"kebab":  strcase.ToKebab,
	"snake":  strcase.ToSnake,
	"title":  iot.TitleFromName,
	"dir":    utils.MakeDirectoryName,
	"jsType": func(v iot.DataTypeInputOutput) (string, error) {
		return v.JSType()
	},
	"settingJSType": func(v iot.DataTypeSetting) (string, error) {
		return v.JSType()
	},
	"paramJSType":   paramJSType,
	"settingType":   settingType,
	"portValueType": portValueType,
	"json": func(v interface{}) (string, error) {
		buf, err := json.Marshal(v)
		return string(buf), err
	},
}

// writeFile is swapped in tests to simulate write failures.
var writeFile = os.WriteFile

type plannedFile struct {
	target  string
	content []byte
	existed bool
	// previous is the content target had before, if it was a readable file.
	previous []byte
}

// treePlan is a rendered template tree that has not been written yet.
type treePlan struct {
	resp  *Response
	files []plannedFile
}

func renderTree(name, dst string, data interface{}, force, dryRun bool, l logger.Logger) (*Response, error) {
	plan, err := planTree(name, dst, data, force)
	if err != nil {
		return nil, err
	}
	if err := plan.write(dryRun, l); err != nil {
		return nil, err
	}
	return plan.resp, nil
}

// planTree renders every file of the template tree in memory. It fails if a
// file would be overwritten and force is not set.
func planTree(name, dst string, data interface{}, force bool) (*treePlan, error) {
	root := path.Join("templates", name)
	if _, err := fs.Stat(templatesFS, root); err != nil {
		return nil, errors.Errorf("unknown template %q", name)
	}
	resp, err := NewResponse(dst)
	if err != nil {
		return nil, err
	}

	plan := &treePlan{resp: resp}
	err = fs.WalkDir(templatesFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel := strings.TrimPrefix(p, root+"/")
		target, err := utils.ApplyTemplate(rel, rel, data, funcs)
		if err != nil {
			return err
		}
		content, err := templatesFS.ReadFile(p)
		if err != nil {
			return errors.Wrapf(err, "reading template %s", p)
		}
		if strings.HasSuffix(target, templateSuffix) {
			target = strings.TrimSuffix(target, templateSuffix)
			out, err := utils.ApplyTemplate(rel, string(content), data, funcs)
			if err != nil {
				return err
			}
			content = []byte(out)
		}
		f := plannedFile{target: filepath.Join(resp.WorkingDirectory, filepath.FromSlash(target)), content: content}
		f.existed = fsx.Exists(f.target)
		if f.existed && !fsx.IsDir(f.target) {
			if f.previous, err = os.ReadFile(f.target); err != nil {
				return errors.Wrapf(err, "reading %s", f.target)
			}
		}
		plan.files = append(plan.files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !force {
		var existing []string
		for _, f := range plan.files {
			if f.existed {
				existing = append(existing, resp.rel(f.target))
			}
		}
		if len(existing) > 0 {
			return nil, utils.WithExplanation(
				utils.NewCLIErrorf(utils.ErrorCodeInvalidArgument, "refusing to overwrite %s", strings.Join(existing, ", ")),
				"Re-run with --force to overwrite existing files.",
			)
		}
	}
	return plan, nil
}

// write writes the planned files. If a write fails, the files created so far
// are removed again.
func (p *treePlan) write(dryRun bool, l logger.Logger) error {
	for i, f := range p.files {
		if !dryRun {
			if err := writePlannedFile(f); err != nil {
				return p.rollback(p.files[:i], err)
			}
		}
		if f.existed {
			p.resp.AddModifiedFile(f.target)
			l.Step("Updated %s", p.resp.rel(f.target))
		} else {
			p.resp.AddCreatedFile(f.target)
			l.Step("Created %s", p.resp.rel(f.target))
		}
	}
	return nil
}

func writePlannedFile(f plannedFile) error {
	if err := os.MkdirAll(filepath.Dir(f.target), 0755); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(f.target))
	}
	if err := writeFile(f.target, f.content, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", f.target)
	}
	return nil
}

// rollback undoes the writes of the files in written and returns cause:
// created files are removed and overwritten files get their previous content
// back. The error lists any file that could not be restored.
func (p *treePlan) rollback(written []plannedFile, cause error) error {
	var left []string
	for _, f := range written {
		var err error
		if f.previous != nil {
			err = writeFile(f.target, f.previous, 0644)
		} else if !f.existed {
			if err = os.Remove(f.target); os.IsNotExist(err) {
				err = nil
			}
		}
		if err != nil {
			left = append(left, p.resp.rel(f.target))
		}
	}
	if len(left) > 0 {
		return errors.Wrapf(cause, "could not undo writes to %s", strings.Join(left, ", "))
	}
	return cause
}
