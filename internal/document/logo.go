package document

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// ResolveLogo maps an invoice logo reference onto a file inside uploadDir.
// It takes the "path" or "url" returned by the upload endpoint, or a bare
// "/uploads/<name>". Anything that lands outside uploadDir gives "".
func ResolveLogo(logo, uploadDir string) string {
	logo = strings.TrimSpace(logo)
	if logo == "" || uploadDir == "" {
		return ""
	}

	if u, err := url.Parse(logo); err == nil && u.Scheme != "" && u.Host != "" {
		logo = u.Path
	}
	if name, ok := strings.CutPrefix(filepath.ToSlash(logo), "/uploads/"); ok {
		name = path.Base(path.Clean("/" + name))
		if name == "/" || name == "." {
			return ""
		}
		logo = filepath.Join(uploadDir, name)
	}

	dir, err := filepath.Abs(uploadDir)
	if err != nil {
		return ""
	}
	file, err := filepath.Abs(logo)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(dir, file)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return file
}
