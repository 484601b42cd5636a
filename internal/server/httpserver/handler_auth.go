package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Role     string `form:"role" json:"role"`
}

func (s *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.sessions.Len()})
}

func (s *HTTPServer) home(c *gin.Context) {
	p := newPage(c, "HeartTrack", "home")
	p.Data = gin.H{"identity": p.Identity, "thresholds": p.Thresholds, "admin_email": s.users.AdminEmail()}
	s.render(c, http.StatusOK, "home.html", p)
}

func (s *HTTPServer) registerForm(c *gin.Context) {
	s.render(c, http.StatusOK, "register.html", newPage(c, "Register", "register"))
}

func (s *HTTPServer) register(c *gin.Context) {
	p := newPage(c, "Register", "register")

	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		p.Error = "invalid request"
		s.render(c, http.StatusBadRequest, "register.html", p)
		return
	}

	user, err := s.users.Register(c.Request.Context(), currentSession(c), req.Email, req.Password, req.Role)
	if err != nil {
		s.fail(c, "register.html", p, err, "")
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "user_id", user.ID, "role", user.Role)

	p.Success = "Registered successfully. You can now log in."
	p.Data = user
	s.render(c, http.StatusCreated, "register.html", p)
}

func (s *HTTPServer) loginForm(c *gin.Context) {
	s.render(c, http.StatusOK, "login.html", newPage(c, "Login", "login"))
}

func (s *HTTPServer) login(c *gin.Context) {
	p := newPage(c, "Login", "login")

	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		p.Error = "invalid request"
		s.render(c, http.StatusBadRequest, "login.html", p)
		return
	}

	id, err := s.users.Login(c.Request.Context(), currentSession(c), req.Email, req.Password)
	if err != nil {
		s.fail(c, "login.html", p, err, "")
		return
	}

	p.Identity = id
	p.Success = "Welcome, " + id.Email + "!"
	p.Data = id
	s.render(c, http.StatusOK, "login.html", p)
}

func (s *HTTPServer) logout(c *gin.Context) {
	s.users.Logout(c.Request.Context(), currentSession(c))

	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"status": "logged out"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
