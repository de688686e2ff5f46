package api

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apidb "github.com/nao1215/devconnect/internal/api/db"
	"github.com/nao1215/devconnect/pkg/middleware"
)

// createPostRequest は投稿作成リクエストのJSON構造。
type createPostRequest struct {
	// Text は投稿本文（必須）。
	Text string `json:"text"`
}

// createCommentRequest はコメント追加リクエストのJSON構造。
type createCommentRequest struct {
	// Text はコメント本文（必須）。
	Text string `json:"text"`
}

// likeResponse はいいねのJSONレスポンス構造。
type likeResponse struct {
	// UserID はいいねしたユーザーのID。
	UserID string `json:"user_id"`
}

// commentResponse はコメントのJSONレスポンス構造。
type commentResponse struct {
	// ID はコメントの一意識別子。削除時に指定する。
	ID string `json:"id"`
	// UserID はコメント投稿者のユーザーID。
	UserID string `json:"user_id"`
	// Text はコメント本文。
	Text string `json:"text"`
	// Name はコメント投稿者の表示名（投稿時点のスナップショット）。
	Name string `json:"name"`
	// AvatarURL はコメント投稿者のアバターURL（投稿時点のスナップショット）。
	AvatarURL string `json:"avatar_url"`
	// CreatedAt はコメント日時。
	CreatedAt string `json:"created_at"`
}

// postResponse は投稿のJSONレスポンス構造。
type postResponse struct {
	// ID は投稿の一意識別子。
	ID string `json:"id"`
	// UserID は投稿者のユーザーID。
	UserID string `json:"user_id"`
	// Text は投稿本文。
	Text string `json:"text"`
	// Name は投稿者の表示名（投稿時点のスナップショット）。
	Name string `json:"name"`
	// AvatarURL は投稿者のアバターURL（投稿時点のスナップショット）。
	AvatarURL string `json:"avatar_url"`
	// Likes はいいね一覧。
	Likes []likeResponse `json:"likes"`
	// Comments はコメント一覧（新しい順）。
	Comments []commentResponse `json:"comments"`
	// CreatedAt は投稿日時。
	CreatedAt string `json:"created_at"`
}

// buildPostResponse は投稿といいね・コメントをまとめてJSONレスポンスに変換する。
func (s *Server) buildPostResponse(ctx context.Context, post apidb.Post) (postResponse, error) {
	likes, err := s.queries.ListPostLikesByPostID(ctx, post.ID)
	if err != nil {
		return postResponse{}, err
	}
	likeResponses := make([]likeResponse, 0, len(likes))
	for _, l := range likes {
		likeResponses = append(likeResponses, likeResponse{UserID: l.UserID})
	}

	comments, err := s.queries.ListPostCommentsByPostID(ctx, post.ID)
	if err != nil {
		return postResponse{}, err
	}
	commentResponses := make([]commentResponse, 0, len(comments))
	for _, cm := range comments {
		commentResponses = append(commentResponses, commentResponse{
			ID:        cm.ID,
			UserID:    cm.UserID,
			Text:      cm.Text,
			Name:      cm.AuthorName,
			AvatarURL: cm.AuthorAvatarUrl,
			CreatedAt: cm.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	return postResponse{
		ID:        post.ID,
		UserID:    post.UserID,
		Text:      post.Text,
		Name:      post.AuthorName,
		AvatarURL: post.AuthorAvatarUrl,
		Likes:     likeResponses,
		Comments:  commentResponses,
		CreatedAt: post.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}, nil
}

// handleCreatePost は投稿の作成を処理するハンドラを返す。
// 投稿者の表示名とアバターは作成時点の値を保存する。
func (s *Server) handleCreatePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []fieldError{{Msg: "リクエストボディが不正です"}}})
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []fieldError{{Msg: "本文は必須です"}}})
			return
		}

		user, err := s.queries.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザー情報の取得に失敗しました"})
			log.Printf("ユーザー取得エラー: %v", err)
			return
		}

		postID := uuid.New().String()
		if err := s.queries.CreatePost(c.Request.Context(), apidb.CreatePostParams{
			ID:              postID,
			UserID:          userID,
			Text:            req.Text,
			AuthorName:      user.Name,
			AuthorAvatarUrl: user.AvatarUrl,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の作成に失敗しました"})
			log.Printf("投稿作成エラー: %v", err)
			return
		}

		post, err := s.queries.GetPostByID(c.Request.Context(), postID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "作成した投稿の取得に失敗しました"})
			log.Printf("投稿取得エラー: %v", err)
			return
		}

		resp, err := s.buildPostResponse(c.Request.Context(), post)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
			log.Printf("投稿組み立てエラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// handleListPosts は投稿一覧の取得を処理するハンドラを返す。新しい順に返す。
func (s *Server) handleListPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := s.queries.ListPosts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿一覧の取得に失敗しました"})
			log.Printf("投稿一覧取得エラー: %v", err)
			return
		}

		responses := make([]postResponse, 0, len(posts))
		for _, p := range posts {
			resp, err := s.buildPostResponse(c.Request.Context(), p)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿一覧の取得に失敗しました"})
				log.Printf("投稿組み立てエラー: %v", err)
				return
			}
			responses = append(responses, resp)
		}

		c.JSON(http.StatusOK, responses)
	}
}

// handleGetPost は単一投稿の取得を処理するハンドラを返す。
func (s *Server) handleGetPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := s.queries.GetPostByID(c.Request.Context(), c.Param("id"))
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"msg": "投稿が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
			log.Printf("投稿取得エラー: %v", err)
			return
		}

		resp, err := s.buildPostResponse(c.Request.Context(), post)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
			log.Printf("投稿組み立てエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// handleDeletePost は投稿の削除を処理するハンドラを返す。
// 投稿者本人のみが削除できる。
func (s *Server) handleDeletePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		postID := c.Param("id")
		post, err := s.queries.GetPostByID(c.Request.Context(), postID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"msg": "投稿が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
			log.Printf("投稿取得エラー: %v", err)
			return
		}

		if post.UserID != userID {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "この投稿を削除する権限がありません"})
			return
		}

		ctx := c.Request.Context()
		if err := s.queries.DeletePostLikesByPostID(ctx, postID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の削除に失敗しました"})
			log.Printf("いいね削除エラー: %v", err)
			return
		}
		if err := s.queries.DeletePostCommentsByPostID(ctx, postID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の削除に失敗しました"})
			log.Printf("コメント削除エラー: %v", err)
			return
		}
		if err := s.queries.DeletePost(ctx, postID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の削除に失敗しました"})
			log.Printf("投稿削除エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"msg": "投稿を削除しました"})
	}
}

// handleLikePost は投稿へのいいねを処理するハンドラを返す。
// 同じ投稿への二重いいねはエラー。
func (s *Server) handleLikePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		postID := c.Param("id")
		post, err := s.queries.GetPostByID(c.Request.Context(), postID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"msg": "投稿が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
			log.Printf("投稿取得エラー: %v", err)
			return
		}

		_, err = s.queries.GetPostLike(c.Request.Context(), apidb.GetPostLikeParams{
			PostID: postID,
			UserID: userID,
		})
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "既にいいね済みです"})
			return
		}
		if err != sql.ErrNoRows {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "いいねに失敗しました"})
			log.Printf("いいね取得エラー: %v", err)
			return
		}

		if err := s.queries.CreatePostLike(c.Request.Context(), apidb.CreatePostLikeParams{
			PostID: postID,
			UserID: userID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "いいねに失敗しました"})
			log.Printf("いいね作成エラー: %v", err)
			return
		}

		resp, err := s.buildPostResponse(c.Request.Context(), post)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
			log.Printf("投稿組み立てエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, resp.Likes)
	}
}

// handleUnlikePost は投稿へのいいね取り消しを処理するハンドラを返す。
// いいねしていない投稿への取り消しはエラー。
func (s *Server) handleUnlikePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		postID := c.Param("id")
		post, err := s.queries.GetPostByID(c.Request.Context(), postID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"msg": "投稿が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
			log.Printf("投稿取得エラー: %v", err)
			return
		}

		_, err = s.queries.GetPostLike(c.Request.Context(), apidb.GetPostLikeParams{
			PostID: postID,
			UserID: userID,
		})
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "まだいいねしていません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "いいねの取り消しに失敗しました"})
			log.Printf("いいね取得エラー: %v", err)
			return
		}

		if err := s.queries.DeletePostLike(c.Request.Context(), apidb.DeletePostLikeParams{
			PostID: postID,
			UserID: userID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "いいねの取り消しに失敗しました"})
			log.Printf("いいね削除エラー: %v", err)
			return
		}

		resp, err := s.buildPostResponse(c.Request.Context(), post)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
			log.Printf("投稿組み立てエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, resp.Likes)
	}
}

// handleAddComment は投稿へのコメント追加を処理するハンドラを返す。
// コメント投稿者の表示名とアバターは作成時点の値を保存する。
func (s *Server) handleAddComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		var req createCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []fieldError{{Msg: "リクエストボディが不正です"}}})
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []fieldError{{Msg: "本文は必須です"}}})
			return
		}

		postID := c.Param("id")
		post, err := s.queries.GetPostByID(c.Request.Context(), postID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"msg": "投稿が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
			log.Printf("投稿取得エラー: %v", err)
			return
		}

		user, err := s.queries.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザー情報の取得に失敗しました"})
			log.Printf("ユーザー取得エラー: %v", err)
			return
		}

		if err := s.queries.CreatePostComment(c.Request.Context(), apidb.CreatePostCommentParams{
			ID:              uuid.New().String(),
			PostID:          postID,
			UserID:          userID,
			Text:            req.Text,
			AuthorName:      user.Name,
			AuthorAvatarUrl: user.AvatarUrl,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "コメントの追加に失敗しました"})
			log.Printf("コメント作成エラー: %v", err)
			return
		}

		resp, err := s.buildPostResponse(c.Request.Context(), post)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
			log.Printf("投稿組み立てエラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, resp.Comments)
	}
}

// handleDeleteComment はコメントの削除を処理するハンドラを返す。
// コメント投稿者本人のみが削除できる。
func (s *Server) handleDeleteComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		postID := c.Param("id")
		post, err := s.queries.GetPostByID(c.Request.Context(), postID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"msg": "投稿が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
			log.Printf("投稿取得エラー: %v", err)
			return
		}

		comment, err := s.queries.GetPostCommentByID(c.Request.Context(), c.Param("comment_id"))
		if err == sql.ErrNoRows || (err == nil && comment.PostID != postID) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "コメントが見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "コメントの取得に失敗しました"})
			log.Printf("コメント取得エラー: %v", err)
			return
		}

		if comment.UserID != userID {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "このコメントを削除する権限がありません"})
			return
		}

		if err := s.queries.DeletePostComment(c.Request.Context(), comment.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "コメントの削除に失敗しました"})
			log.Printf("コメント削除エラー: %v", err)
			return
		}

		resp, err := s.buildPostResponse(c.Request.Context(), post)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
			log.Printf("投稿組み立てエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, resp.Comments)
	}
}
