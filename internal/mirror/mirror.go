// Package mirror serves the simulated panel over HTTP so a host run can
// be watched from a browser.
package mirror

import (
	"bytes"
	"image"
	"image/png"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/image/draw"
)

const maxScale = 8

// Source is anything that can render its current frame.
type Source interface {
	Snapshot() *image.RGBA
}

type Server struct {
	app *fiber.App
	src Source
}

func New(src Source) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{DisableStartupMessage: true}),
		src: src,
	}
	s.app.Get("/", s.index)
	s.app.Get("/frame.png", s.frame)
	return s
}

// App exposes the router, mainly for tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen blocks serving on addr until Shutdown.
func (s *Server) Listen(addr string) error { return s.app.Listen(addr) }

func (s *Server) Shutdown() error { return s.app.Shutdown() }

func (s *Server) frame(c *fiber.Ctx) error {
	scale, err := strconv.Atoi(c.Query("scale", "1"))
	if err != nil || scale < 1 || scale > maxScale {
		return c.Status(fiber.StatusBadRequest).SendString("scale must be 1.." + strconv.Itoa(maxScale))
	}

	img := s.src.Snapshot()
	if img == nil {
		return c.Status(fiber.StatusServiceUnavailable).SendString("No frame available")
	}
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to encode image")
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(buf.Bytes())
}

func (s *Server) index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexHTML)
}

const indexHTML = `<!doctype html>
<title>TivaGC</title>
<body style="background:#111;margin:0;display:flex;justify-content:center;align-items:center;height:100vh">
<img id="lcd" src="/frame.png?scale=4" style="image-rendering:pixelated">
<script>
setInterval(function () {
  document.getElementById("lcd").src = "/frame.png?scale=4&t=" + Date.now();
}, 100);
</script>
</body>
`
