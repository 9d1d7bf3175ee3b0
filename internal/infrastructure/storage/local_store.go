package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"justice-airdrop.backend/internal/config"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/pkg/utils"
)

// URL prefixes under which the directories are mounted
const (
	UploadsURLPrefix = "/static/uploads"
	LogoURLPrefix    = "/static/logo"
	VideoURLPrefix   = "/static/video"
)

var (
	ErrFileTooLarge      = domainerrors.BadRequest("File too large")
	ErrUnsupportedFormat = domainerrors.BadRequest("Only .mp4 or .webm allowed")
	unsafeNameChars      = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	logoExtensions       = []string{".png", ".jpg", ".jpeg", ".webp", ".svg", ".gif"}
	videoExtensions      = []string{".mp4", ".webm"}
	newFileToken         = utils.RandomFileToken
)

// LocalStore keeps media on the local filesystem
type LocalStore struct {
	uploadDir string
	logoDir   string
	videoDir  string
	maxBytes  int64
}

// NewLocalStore creates the configured directories
func NewLocalStore(cfg config.StorageConfig) (*LocalStore, error) {
	s := &LocalStore{
		uploadDir: cfg.UploadDir,
		logoDir:   cfg.LogoDir,
		videoDir:  cfg.VideoDir,
		maxBytes:  int64(cfg.MaxUploadMB) << 20,
	}
	for _, dir := range []string{s.uploadDir, s.logoDir, s.videoDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create media dir %s: %w", dir, err)
		}
	}
	return s, nil
}

// Dirs returns the upload, logo and video directories
func (s *LocalStore) Dirs() (uploads, logo, video string) {
	return s.uploadDir, s.logoDir, s.videoDir
}

// SaveUpload stores a submission attachment under a randomized name and returns its URL
func (s *LocalStore) SaveUpload(filename string, r io.Reader) (string, error) {
	name := newFileToken() + "_" + SanitizeFilename(filename)
	if err := s.write(filepath.Join(s.uploadDir, name), r); err != nil {
		return "", err
	}
	return UploadsURLPrefix + "/" + name, nil
}

// RemoveUpload deletes an attachment previously returned by SaveUpload
func (s *LocalStore) RemoveUpload(url string) error {
	name := strings.TrimPrefix(url, UploadsURLPrefix+"/")
	if name == url || name == "" || name != filepath.Base(name) {
		return fmt.Errorf("not an upload url: %q", url)
	}
	if err := os.Remove(filepath.Join(s.uploadDir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// SavePromoVideo replaces the promo video; only mp4 and webm are accepted
func (s *LocalStore) SavePromoVideo(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !contains(videoExtensions, ext) {
		return "", ErrUnsupportedFormat
	}
	name := "promo" + ext
	tmp := filepath.Join(s.videoDir, "."+name+".tmp")
	if err := s.write(tmp, r); err != nil {
		return "", err
	}
	for _, other := range videoExtensions {
		if other != ext {
			_ = os.Remove(filepath.Join(s.videoDir, "promo"+other))
		}
	}
	if err := os.Rename(tmp, filepath.Join(s.videoDir, name)); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("store video: %w", err)
	}
	return VideoURLPrefix + "/" + name, nil
}

// LogoURL returns the URL of the first logo image, if any
func (s *LocalStore) LogoURL() (string, bool) {
	return firstMatching(s.logoDir, LogoURLPrefix, logoExtensions)
}

// VideoURL returns the URL of the promo video, if any
func (s *LocalStore) VideoURL() (string, bool) {
	return firstMatching(s.videoDir, VideoURLPrefix, videoExtensions)
}

func (s *LocalStore) write(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	src := r
	if s.maxBytes > 0 {
		src = io.LimitReader(r, s.maxBytes+1)
	}
	n, err := io.Copy(f, src)
	closeErr := f.Close()
	if err == nil && s.maxBytes > 0 && n > s.maxBytes {
		err = ErrFileTooLarge
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}

// SanitizeFilename keeps the base name and replaces unsafe characters
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeNameChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "file"
	}
	return base
}

func firstMatching(dir, prefix string, exts []string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if contains(exts, strings.ToLower(filepath.Ext(e.Name()))) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return prefix + "/" + names[0], true
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
