package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/toolbench/toolbench/internal/colormodel"
	"github.com/toolbench/toolbench/internal/diff"
)

func (s *Server) handleIndex(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, s.index)
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok", Version: s.version})
}

type diffRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Mode  string `json:"mode"` // empty uses the configured default
}

func (s *Server) handleDiff(c echo.Context) error {
	var req diffRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	mode := s.defaultMode
	if req.Mode != "" {
		m, err := diff.ParseMode(req.Mode)
		if err != nil {
			return badRequest(c, err.Error())
		}
		mode = m
	}

	result := diff.Compute(req.Left, req.Right, mode)
	log.Debug().
		Str("mode", mode.String()).
		Int("additions", result.Stats.Additions).
		Int("deletions", result.Stats.Deletions).
		Int("modifications", result.Stats.Modifications).
		Msg("diff computed")
	return c.JSON(http.StatusOK, result)
}

type convertRequest struct {
	Color  string `json:"color"`
	Strict bool   `json:"strict"`
}

func (s *Server) handleColorConvert(c echo.Context) error {
	var req convertRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	color, err := parseColor(req.Color, req.Strict)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, colormodel.Describe(color))
}

type harmonyRequest struct {
	Color  string `json:"color"`
	Type   string `json:"type"` // empty means complementary
	Strict bool   `json:"strict"`
}

type harmonyResponse struct {
	Type   colormodel.HarmonyType `json:"type"`
	Colors []colormodel.Hex       `json:"colors"`
}

func (s *Server) handleColorHarmony(c echo.Context) error {
	var req harmonyRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	color, err := parseColor(req.Color, req.Strict)
	if err != nil {
		return badRequest(c, err.Error())
	}
	typ := colormodel.Complementary
	if req.Type != "" {
		if typ, err = colormodel.ParseHarmonyType(req.Type); err != nil {
			return badRequest(c, err.Error())
		}
	}
	colors, err := colormodel.Harmony(color, typ)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, harmonyResponse{Type: typ, Colors: colors})
}

type shadesRequest struct {
	Color  string `json:"color"`
	Export string `json:"export"` // optional: css, json or tailwind
	Name   string `json:"name"`
	Strict bool   `json:"strict"`
}

type shadesResponse struct {
	Shades []colormodel.Shade `json:"shades"`
	Export string             `json:"export,omitempty"`
}

func (s *Server) handleColorShades(c echo.Context) error {
	var req shadesRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	color, err := parseColor(req.Color, req.Strict)
	if err != nil {
		return badRequest(c, err.Error())
	}

	resp := shadesResponse{Shades: colormodel.Shades(color)}
	if req.Export != "" {
		format, err := colormodel.ParseExportFormat(req.Export)
		if err != nil {
			return badRequest(c, err.Error())
		}
		if resp.Export, err = colormodel.ExportShades(req.Name, resp.Shades, format); err != nil {
			return badRequest(c, err.Error())
		}
	}
	return c.JSON(http.StatusOK, resp)
}

type contrastRequest struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	Strict     bool   `json:"strict"`
}

func (s *Server) handleColorContrast(c echo.Context) error {
	var req contrastRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	fg, err := parseColor(req.Foreground, req.Strict)
	if err != nil {
		return badRequest(c, err.Error())
	}
	bg, err := parseColor(req.Background, req.Strict)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, colormodel.Contrast(fg, bg))
}

// parseColor parses s leniently (malformed input is black) unless strict.
func parseColor(s string, strict bool) (colormodel.Hex, error) {
	if strict {
		return colormodel.ParseHexStrict(s)
	}
	return colormodel.ParseHex(s), nil
}

func badRequest(c echo.Context, msg string) error {
	log.Info().Str("uri", c.Request().RequestURI).Str("reason", msg).Msg("bad request")
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}
