package controller

import (
	"github.com/gofiber/fiber/v2"

	"yt-video-chat-be/internal/dto"
	"yt-video-chat-be/internal/pkg/serverutils"
	"yt-video-chat-be/internal/service"
)

type IVideoController interface {
	RegisterRoutes(r fiber.Router)
	Load(ctx *fiber.Ctx) error
	LoadTranscript(ctx *fiber.Ctx) error
	Current(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type videoController struct {
	videoService service.IVideoService
}

func NewVideoController(videoService service.IVideoService) IVideoController {
	return &videoController{
		videoService: videoService,
	}
}

func (c *videoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/video/v1")
	h.Post("load", c.Load)
	h.Post("load-transcript", c.LoadTranscript)
	h.Get("current", c.Current)
	h.Delete("", c.Reset)
}

func (c *videoController) Load(ctx *fiber.Ctx) error {
	var req dto.LoadVideoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.videoService.LoadFromURL(ctx.Context(), req.Url)
	if err != nil {
		return err
	}

	if res.AlreadyLoaded {
		return ctx.JSON(serverutils.SuccessResponse("This video is already loaded. Ask questions below!", res))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success! Start chatting with your video.", res))
}

func (c *videoController) LoadTranscript(ctx *fiber.Ctx) error {
	var req dto.LoadTranscriptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.videoService.LoadFromTranscript(ctx.Context(), req.Transcript)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Manual transcript loaded.", res))
}

func (c *videoController) Current(ctx *fiber.Ctx) error {
	res, err := c.videoService.Current(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show current video", res))
}

func (c *videoController) Reset(ctx *fiber.Ctx) error {
	if err := c.videoService.Reset(ctx.Context()); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Session cleared. Load a new video.", nil))
}
