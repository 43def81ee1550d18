package minirs

import (
	"io/ioutil"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/minirs/statik"
)

//go:generate statik -src=lib

const sampleExt = ".rs"

func sampleFS() (http.FileSystem, error) {
	return fs.New()
}

// Samples returns the names of the bundled sample programs.
func Samples() ([]string, error) {
	statikFS, err := sampleFS()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != sampleExt {
			continue
		}
		names = append(names, strings.TrimSuffix(fi.Name(), sampleExt))
	}
	sort.Strings(names)
	return names, nil
}

func LoadSample(name string) (string, error) {
	statikFS, err := sampleFS()
	if err != nil {
		return "", err
	}
	f, err := statikFS.Open(path.Join("/", name+sampleExt))
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := ioutil.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
