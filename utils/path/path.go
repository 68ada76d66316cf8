package path

import (
	"os"
	"path/filepath"
	"runtime"
)

// RootPath 傳回專案根目錄的絕對路徑（由本檔位置往上兩層）
func RootPath() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot resolve caller location")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}

// Resolve 相對路徑以專案根目錄為基準
func Resolve(p string, sub ...string) string {
	if filepath.IsAbs(p) {
		return p
	}
	parts := append([]string{RootPath()}, sub...)
	return filepath.Join(append(parts, p)...)
}

// Exists 路徑是否存在
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
