package services

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var markdownImagePattern = regexp.MustCompile(`!\[[^\]]*\]\(\s*((?:[^\s()]|\([^\s()]*\))*)(?:\s+[^)]*)?\)`)

type MarkdownImage struct {
	Match string `json:"match"`
	Path  string `json:"path"`
}

type CoverImageStatus string

const (
	CoverImageWatermarked = CoverImageStatus("watermarked")
	CoverImageMissing     = CoverImageStatus("missing")
	CoverImageExempt      = CoverImageStatus("exempt")
	CoverImageSkipped     = CoverImageStatus("skipped")
	CoverImageFailed      = CoverImageStatus("failed")
)

type CoverImageOutcome struct {
	Path   string           `json:"path"`
	Status CoverImageStatus `json:"status"`
	Error  string           `json:"error,omitempty"`
}

type CoverResult struct {
	Cover    string              `json:"cover"`
	Images   []string            `json:"images"`
	Outcomes []CoverImageOutcome `json:"outcomes"`
}

// ExtractImages lists the images referenced by the markdown in document order.
// The path is the text inside the parentheses up to the first whitespace, so
// titles like ![a](/a.jpg "title") are dropped. Balanced parentheses stay in
// the path, so /a(1).jpg is kept whole.
func ExtractImages(content string) []MarkdownImage {
	var images []MarkdownImage
	for _, match := range markdownImagePattern.FindAllStringSubmatch(content, -1) {
		if len(match[1]) == 0 {
			continue
		}
		images = append(images, MarkdownImage{Match: match[0], Path: match[1]})
	}
	return images
}

// SelectCover picks the first image as the cover. The path is used verbatim.
func SelectCover(images []MarkdownImage) string {
	if len(images) == 0 {
		return models.DefaultArticleCover
	}
	return images[0].Path
}

func GetPublicPath() string {
	if dir := viper.GetString("uploads.public_path"); len(dir) > 0 {
		return dir
	}
	return "public"
}

// ResolvePublicPath maps an image path used in markdown to a file inside the
// public directory. Remote urls and paths escaping the directory are rejected.
func ResolvePublicPath(path string) (string, bool) {
	if strings.Contains(path, "://") || strings.HasPrefix(path, "//") {
		return "", false
	}

	base := GetPublicPath()
	file := filepath.Join(base, filepath.FromSlash(strings.TrimPrefix(path, "/")))
	if rel, err := filepath.Rel(base, file); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	return file, true
}

// WatermarkImages applies the watermark phrase to every local image file that
// exists and is not exempted. Paths and full matches are both accepted in the
// exemption list.
func WatermarkImages(images []MarkdownImage, phrase string, except ...string) []CoverImageOutcome {
	exempt := lo.SliceToMap(except, func(item string) (string, bool) {
		return item, true
	})

	outcomes := make([]CoverImageOutcome, 0, len(images))
	for _, image := range images {
		outcome := CoverImageOutcome{Path: image.Path}

		file, local := ResolvePublicPath(image.Path)
		if _, err := os.Stat(file); !local || err != nil {
			outcome.Status = CoverImageMissing
			log.Debug().Str("path", image.Path).Msg("Image file not found, skipped watermarking...")
		} else if exempt[image.Path] || exempt[image.Match] {
			outcome.Status = CoverImageExempt
		} else if err := ImageWatermarker.Watermark(file, phrase); errors.Is(err, ErrWatermarkSkipped) {
			outcome.Status = CoverImageSkipped
			log.Debug().Str("path", image.Path).Msg("Image left without watermark...")
		} else if err != nil {
			outcome.Status = CoverImageFailed
			outcome.Error = err.Error()
			log.Warn().Err(err).Str("path", image.Path).Msg("Unable to watermark article image...")
		} else {
			outcome.Status = CoverImageWatermarked
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// ResolveCover watermarks the local images of the markdown and returns the
// first image as the cover, or the default cover when there is no image.
// Missing files and watermark failures never affect the cover.
func ResolveCover(content string, except ...string) CoverResult {
	images := ExtractImages(content)

	result := CoverResult{
		Cover: SelectCover(images),
		Images: lo.Map(images, func(item MarkdownImage, _ int) string {
			return item.Path
		}),
	}
	if len(images) == 0 {
		return result
	}

	result.Outcomes = WatermarkImages(images, GetWatermarkText(), except...)

	return result
}
