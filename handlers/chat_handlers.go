package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ChatRequest is the body for the assistant endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// HandleChat answers a free-text question, scoped to the caller's role
// from the JWT claims.
func HandleChat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Message is required"})
	}

	userID, _ := c.Locals("userID").(string)
	role, _ := c.Locals("userRole").(string)

	intent, reply, err := chatRouter.Reply(c.Context(), role, userID, req.Message)
	if err != nil {
		log.Printf("❌ [CHAT] Reply failed for intent %s: %v", intent, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to answer"})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"intent": intent, "reply": reply}})
}
