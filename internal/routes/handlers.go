package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Dcode36/post-comment-system/internal/auth"
	"github.com/Dcode36/post-comment-system/internal/schema"
)

func homeHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Post-Comments Service API is running"))
}

type authResponse struct {
	User  schema.User `json:"user"`
	Token string      `json:"token"`
}

func (s *Server) signupHandler(w http.ResponseWriter, r *http.Request) {
	var body schema.SignupBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Create(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := auth.GenerateToken([]byte(s.cfg.JWTSecret), user.ID, s.cfg.TokenLifetime)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var body schema.LoginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Authenticate(r.Context(), body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := auth.GenerateToken([]byte(s.cfg.JWTSecret), user.ID, s.cfg.TokenLifetime)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (s *Server) listPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) getPostHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	post, err := s.posts.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	comments, err := s.comments.ListThreaded(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		schema.ResolvedPost
		Comments []schema.ThreadedComment `json:"comments"`
	}{post, comments})
}

func (s *Server) createPostHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var body schema.PostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := s.posts.Create(r.Context(), body.Title, body.Body, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) likeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	liked, err := s.posts.ToggleLike(r.Context(), id, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}

func (s *Server) addCommentHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var body schema.CommentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	postID, err := primitive.ObjectIDFromHex(body.PostID)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "incorrect post id")
		return
	}

	comment, err := s.comments.Add(r.Context(), postID, userID, body.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (s *Server) replyHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	parentID, ok := pathID(w, r)
	if !ok {
		return
	}

	var body schema.ReplyBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := s.comments.Reply(r.Context(), parentID, userID, body.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reply)
}

func (s *Server) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	comments, err := s.comments.ListThreaded(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// pathID parses the {id} route variable, answering 400 on a malformed
// id.
func pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "incorrect id")
		return primitive.NilObjectID, false
	}
	return id, true
}

// callerID pulls the authenticated identity placed in the context by
// JwtAuthMiddleware.
func callerID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "missing caller identity")
		return primitive.NilObjectID, false
	}
	return userID, true
}
