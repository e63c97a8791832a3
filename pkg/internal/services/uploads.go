package services

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var ArticleImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// SaveArticleImage stores an image uploaded from the editor and returns the
// path to reference it with in markdown.
func SaveArticleImage(filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !lo.Contains(ArticleImageExtensions, ext) {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	rel := path.Join("/uploads/article", time.Now().Format("20060102"), uuid.NewString()+ext)
	file, _ := ResolvePublicPath(rel)
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return "", fmt.Errorf("unable to prepare upload directory: %v", err)
	}

	dst, err := os.Create(file)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(file)
		return "", fmt.Errorf("unable to save image: %v", err)
	}

	return rel, nil
}
