package httpapi

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	indexFileName = "index.html"
	adminFileName = "admin.html"
)

// staticAssets serves regular files from a single directory. http.Dir
// rejects paths escaping the root; directories are never listed.
type staticAssets struct {
	root http.FileSystem
}

func newStaticAssets(directory string) *staticAssets {
	if strings.TrimSpace(directory) == "" {
		return &staticAssets{}
	}
	return &staticAssets{root: http.Dir(directory)}
}

func (assets *staticAssets) serveNamed(name string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		assets.serve(ctx, "/"+name)
	}
}

func (assets *staticAssets) serveRequestPath(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodHead {
		ctx.JSON(http.StatusNotFound, errorResponse(codeNotFound, messageNotFound))
		return
	}
	assets.serve(ctx, ctx.Request.URL.Path)
}

func (assets *staticAssets) serve(ctx *gin.Context, requestPath string) {
	if assets.root == nil {
		ctx.JSON(http.StatusNotFound, errorResponse(codeNotFound, messageNotFound))
		return
	}
	cleaned := path.Clean("/" + requestPath)
	file, err := assets.root.Open(cleaned)
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse(codeNotFound, messageNotFound))
		return
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil || info.IsDir() {
		ctx.JSON(http.StatusNotFound, errorResponse(codeNotFound, messageNotFound))
		return
	}
	http.ServeContent(ctx.Writer, ctx.Request, info.Name(), info.ModTime(), file)
}
