package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	_ "github.com/viant/afs/mem"
)

func upload(t *testing.T, fs afs.Service, files map[string]string) {
	for URL, content := range files {
		require.NoError(t, fs.Upload(context.Background(), URL, 0644, strings.NewReader(content)))
	}
}

func TestDetector_DetectProject(t *testing.T) {
	fs := afs.New()
	upload(t, fs, map[string]string{
		"mem://localhost/detect/web/package.json":  `{"name": "web-app", "version": "1.0.0"}`,
		"mem://localhost/detect/web/src/app.js":    "var a = 1;",
		"mem://localhost/detect/svc/go.mod":        "module github.com/acme/svc\n\ngo 1.24\n",
		"mem://localhost/detect/svc/static/app.js": "var b = 2;",
	})
	tests := []struct {
		description  string
		location     string
		rootURL      string
		projectType  string
		name         string
		relativePath string
	}{
		{
			description:  "package.json",
			location:     "mem://localhost/detect/web/src/app.js",
			rootURL:      "mem://localhost/detect/web",
			projectType:  "javascript",
			name:         "web-app",
			relativePath: "src/app.js",
		},
		{
			description:  "go.mod",
			location:     "mem://localhost/detect/svc/static",
			rootURL:      "mem://localhost/detect/svc",
			projectType:  "go",
			name:         "github.com/acme/svc",
			relativePath: "static",
		},
	}
	detector := New(fs)
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			project, err := detector.DetectProject(context.Background(), tc.location)
			require.NoError(t, err)
			assert.Equal(t, tc.rootURL, project.RootURL)
			assert.Equal(t, tc.projectType, project.Type)
			assert.Equal(t, tc.name, project.Name)
			assert.Equal(t, tc.relativePath, project.RelativePath)
			assert.Empty(t, project.TreePath())
		})
	}
}

func TestProject_TreePath(t *testing.T) {
	project := &Project{RootURL: "file:///home/dev/web/"}
	assert.Equal(t, "file:///home/dev/web", project.TreePath())
	assert.Empty(t, (&Project{RootURL: "mem://localhost/web"}).TreePath())
}

func TestGitProjectName(t *testing.T) {
	assert.Equal(t, "jsdbg", gitProjectName("git@github.com:viant/jsdbg.git"))
	assert.Equal(t, "jsdbg", gitProjectName("https://github.com/viant/jsdbg"))
}

func TestLoad(t *testing.T) {
	fs := afs.New()
	upload(t, fs, map[string]string{
		"mem://localhost/load/index.html":                "<script>var a = 1;</script>",
		"mem://localhost/load/js/app.js":                 "var b = 2;",
		"mem://localhost/load/README.md":                 "# readme",
		"mem://localhost/load/node_modules/dep/index.js": "var c = 3;",
	})
	sources, err := Load(context.Background(), fs, "mem://localhost/load")
	require.NoError(t, err)
	var urls []string
	for _, source := range sources {
		urls = append(urls, source.URL)
		assert.NotEmpty(t, source.Text)
	}
	assert.ElementsMatch(t, []string{"mem://localhost/load/index.html", "mem://localhost/load/js/app.js"}, urls)

	single, err := Load(context.Background(), fs, "mem://localhost/load/index.html")
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.True(t, single[0].IsHTML())
}
