package handler

import (
	"context"
	"net/http"

	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stpnv0/Tourify/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		DisplayName:    req.DisplayName,
		Role:           domain.UserRole(req.Role),
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUser(c *ginext.Context) {
	userID, ok := pathID(c, "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) FollowUser(c *ginext.Context) {
	followeeID, ok := pathID(c, "user")
	if !ok {
		return
	}

	var req dto.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.userService.Follow(c.Request.Context(), req.FollowerID, followeeID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "following"})
}

func (h *Handler) UnfollowUser(c *ginext.Context) {
	followeeID, ok := pathID(c, "user")
	if !ok {
		return
	}

	var req dto.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.userService.Unfollow(c.Request.Context(), req.FollowerID, followeeID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "unfollowed"})
}

func (h *Handler) SuggestedUsers(c *ginext.Context) {
	userID, ok := pathID(c, "user")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	suggested, err := h.userService.Suggested(c.Request.Context(), userID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SuggestedUserResponse, 0, len(suggested))
	for _, s := range suggested {
		resp = append(resp, dto.ToSuggestedUserResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Posts

func (h *Handler) CreatePost(c *ginext.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	post, err := h.feedService.CreatePost(c.Request.Context(), domain.CreatePostInput{
		AuthorID: req.AuthorID,
		EventID:  req.EventID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostResponse(post))
}

func (h *Handler) EventPosts(c *ginext.Context) {
	eventID, ok := pathID(c, "event")
	if !ok {
		return
	}

	posts, err := h.feedService.EventPosts(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponses(posts))
}

func (h *Handler) UserFeed(c *ginext.Context) {
	userID, ok := pathID(c, "user")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	posts, err := h.feedService.Feed(c.Request.Context(), userID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponses(posts))
}

func (h *Handler) LikePost(c *ginext.Context) {
	h.toggleLike(c, h.feedService.Like)
}

func (h *Handler) UnlikePost(c *ginext.Context) {
	h.toggleLike(c, h.feedService.Unlike)
}

func (h *Handler) toggleLike(c *ginext.Context, fn func(ctx context.Context, postID, userID string) (int, error)) {
	postID, ok := pathID(c, "post")
	if !ok {
		return
	}

	var req dto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	count, err := fn(c.Request.Context(), postID, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{PostID: postID, LikeCount: count})
}

func (h *Handler) AddComment(c *ginext.Context) {
	postID, ok := pathID(c, "post")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.feedService.Comment(c.Request.Context(), postID, req.AuthorID, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

func (h *Handler) ListComments(c *ginext.Context) {
	postID, ok := pathID(c, "post")
	if !ok {
		return
	}

	comments, err := h.feedService.Comments(c.Request.Context(), postID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		resp = append(resp, dto.ToCommentResponse(cm))
	}

	c.JSON(http.StatusOK, resp)
}

func toPostResponses(posts []*domain.Post) []dto.PostResponse {
	resp := make([]dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, dto.ToPostResponse(p))
	}
	return resp
}
