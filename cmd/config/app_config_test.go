package config_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"recipebox/cmd/config"
	"recipebox/entities"
	"recipebox/internal/testutil"
	"recipebox/internal/utils"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// browser keeps cookies between requests the way a user agent would.
type browser struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func newBrowser(t *testing.T) (*browser, *gorm.DB) {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "APP_ENV: test\nLOG_FILE: " + filepath.Join(dir, "access.log") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))
	utils.LoadConfigFile(cfgPath)

	db := testutil.NewDB(t)
	app, err := config.NewApp(db, zap.NewNop())
	require.NoError(t, err)

	return &browser{t: t, app: app, cookies: map[string]string{}}, db
}

func (b *browser) do(method, path string, form url.Values) *http.Response {
	b.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	for name, value := range b.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	resp, err := b.app.Test(req, -1)
	require.NoError(b.t, err)

	for _, c := range resp.Cookies() {
		if c.Value == "" || (!c.Expires.IsZero() && c.Expires.Before(time.Now())) {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c.Value
	}
	return resp
}

func (b *browser) get(path string) (*http.Response, string) {
	b.t.Helper()
	resp := b.do(http.MethodGet, path, nil)
	return resp, readBody(b.t, resp)
}

func (b *browser) post(path string, form url.Values) (*http.Response, string) {
	b.t.Helper()
	resp := b.do(http.MethodPost, path, form)
	return resp, readBody(b.t, resp)
}

// follow requests the redirect target of resp.
func (b *browser) follow(resp *http.Response) (*http.Response, string) {
	b.t.Helper()
	require.Equal(b.t, fiber.StatusSeeOther, resp.StatusCode)
	return b.get(resp.Header.Get(fiber.HeaderLocation))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func assertRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, location, resp.Header.Get(fiber.HeaderLocation))
}

func (b *browser) registerAndLogin(username, password string) {
	b.t.Helper()
	resp, _ := b.post("/register", url.Values{"username": {username}, "password": {password}, "user_profile": {"Home cook."}})
	assertRedirect(b.t, resp, "/login_page")
	resp, _ = b.post("/login", url.Values{"username": {username}, "password": {password}})
	assertRedirect(b.t, resp, "/login/home")
}

func recipeForm(name string) url.Values {
	return url.Values{
		"name":              {name},
		"instruction":       {"Mix and fry."},
		"prep_time":         {"5"},
		"cook_time":         {"10"},
		"serving":           {"2"},
		"category_id":       {"None"},
		"ingredient_name[]": {"flour", "milk", ""},
		"amount[]":          {"200", "300", "1"},
		"unit[]":            {"g", "ml", "pinch"},
	}
}

func recipeID(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()
	var r entities.Recipe
	require.NoError(t, db.Where("name = ?", name).First(&r).Error)
	return r.ID.String()
}

func TestSessionGate(t *testing.T) {
	b, _ := newBrowser(t)

	for _, path := range []string{"/login/home", "/loggedin_user_saves", "/announcement"} {
		resp, _ := b.get(path)
		assertRedirect(t, resp, "/login_page")
	}

	resp, body := b.get("/login/home")
	_, body = b.follow(resp)
	assert.Contains(t, body, "Please log in first.")

	// the flash is shown once
	_, body = b.get("/login_page")
	assert.NotContains(t, body, "Please log in first.")
}

func TestRegisterLoginLogout(t *testing.T) {
	b, db := newBrowser(t)

	resp, _ := b.post("/register", url.Values{"username": {"alice"}, "password": {"hunter2"}, "user_profile": {"I bake bread."}})
	assertRedirect(t, resp, "/login_page")
	_, body := b.follow(resp)
	assert.Contains(t, body, "Registration success")

	resp, body = b.post("/register", url.Values{"username": {"alice"}, "password": {"other"}})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "That username is already taken.")

	resp, _ = b.post("/register", url.Values{"username": {"al"}, "password": {"x"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var users int64
	require.NoError(t, db.Model(&entities.User{}).Count(&users).Error)
	assert.EqualValues(t, 1, users)

	resp, body = b.post("/login", url.Values{"username": {"alice"}, "password": {"wrong"}})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Incorrect username or password.")
	assert.NotContains(t, b.cookies, "session")

	resp, body = b.post("/login", url.Values{"username": {"nobody"}, "password": {"hunter2"}})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Incorrect username or password.")

	resp, _ = b.post("/login", url.Values{"username": {"alice"}, "password": {"hunter2"}})
	assertRedirect(t, resp, "/login/home")
	require.Contains(t, b.cookies, "session")

	resp, body = b.follow(resp)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Welcome, alice")
	assert.Contains(t, body, "I bake bread.")
	assert.Contains(t, body, "Membership: none")

	resp, _ = b.get("/logout")
	assertRedirect(t, resp, "/")
	assert.NotContains(t, b.cookies, "session")

	resp, _ = b.get("/login/home")
	assertRedirect(t, resp, "/login_page")
}

func TestTamperedSessionIsAnonymous(t *testing.T) {
	b, _ := newBrowser(t)
	b.cookies["session"] = "not-a-valid-cookie"

	resp, _ := b.get("/login/home")
	assertRedirect(t, resp, "/login_page")
}

func TestPublishAndBrowseRecipes(t *testing.T) {
	b, db := newBrowser(t)
	b.registerAndLogin("alice", "pw")

	resp, _ := b.post("/user_new_recipe", recipeForm("Pancakes"))
	assertRedirect(t, resp, "/login/home")
	_, body := b.follow(resp)
	assert.Contains(t, body, "New recipe added.")
	assert.Contains(t, body, "Flour: 200 g; Milk: 300 ml")

	var usages int64
	require.NoError(t, db.Model(&entities.RecipeIngredient{}).Count(&usages).Error)
	assert.EqualValues(t, 2, usages)

	_, body = b.get("/loggedin_user_all_recipes")
	assert.Contains(t, body, "Pancakes")
	assert.Contains(t, body, "by alice")

	_, body = b.get("/recipes")
	assert.Contains(t, body, "Pancakes")

	bad := recipeForm("Broken")
	bad.Set("serving", "lots")
	resp, _ = b.post("/user_new_recipe", bad)
	assertRedirect(t, resp, "/login/home")
	_, body = b.follow(resp)
	assert.Contains(t, body, "Please fill in correct information.")
}

func TestGlobalRecipeAndCategories(t *testing.T) {
	b, db := newBrowser(t)
	dessert := testutil.CategoryByName(t, db, "Dessert")

	form := recipeForm("Brownies")
	form.Set("category_id", dessert.ID.String())
	resp, _ := b.post("/add_recipe", form)
	assertRedirect(t, resp, "/recipes")

	_, body := b.get("/category/" + dessert.ID.String() + "/recipes")
	assert.Contains(t, body, "Brownies")

	_, body = b.get("/categories")
	assert.Contains(t, body, "Dessert")

	missing := recipeForm("Ghost")
	missing.Set("category_id", "3f1e5a2b-0c4d-4e6f-8a9b-1c2d3e4f5a6b")
	resp, _ = b.post("/add_recipe", missing)
	assertRedirect(t, resp, "/new_recipe")
	_, body = b.follow(resp)
	assert.Contains(t, body, "That category does not exist.")

	resp, body = b.get("/category/nope/recipes")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "The page you are looking for does not exist.")

	// global recipes have no author and are left out of the authored listing
	b.registerAndLogin("bob", "pw")
	_, body = b.get("/loggedin_user_all_recipes")
	assert.NotContains(t, body, "Brownies")
}

func TestSaveAndUnsave(t *testing.T) {
	b, db := newBrowser(t)
	b.registerAndLogin("alice", "pw")
	resp, _ := b.post("/user_new_recipe", recipeForm("Pancakes"))
	assertRedirect(t, resp, "/login/home")
	id := recipeID(t, db, "Pancakes")

	resp, _ = b.post("/save_recipe/"+id, nil)
	assertRedirect(t, resp, "/loggedin_user_all_recipes")
	_, body := b.follow(resp)
	assert.Contains(t, body, "You successfully saved the recipe.")

	resp, _ = b.get("/save_recipe/" + id)
	assertRedirect(t, resp, "/loggedin_user_all_recipes")
	_, body = b.follow(resp)
	assert.Contains(t, body, "This recipe was already in your folder.")

	_, body = b.get("/loggedin_user_saves")
	assert.Contains(t, body, "Pancakes")

	resp, _ = b.post("/delete_saved_recipe/"+id, nil)
	assertRedirect(t, resp, "/loggedin_user_saves")
	_, body = b.follow(resp)
	assert.Contains(t, body, "You successfully deleted it from your folder.")
	assert.Contains(t, body, "Your folder is empty.")

	resp, _ = b.get("/delete_saved_recipe/" + id)
	assertRedirect(t, resp, "/loggedin_user_saves")

	resp, _ = b.post("/save_recipe/9d3c7b1a-2e4f-4a6b-8c0d-1e2f3a4b5c6d", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestReviews(t *testing.T) {
	b, db := newBrowser(t)
	b.registerAndLogin("alice", "pw")
	resp, _ := b.post("/user_new_recipe", recipeForm("Pancakes"))
	assertRedirect(t, resp, "/login/home")
	id := recipeID(t, db, "Pancakes")

	resp, _ = b.post("/add_review/"+id, url.Values{"content": {"Fluffy and sweet"}, "like": {"1"}})
	assertRedirect(t, resp, "/review_page/"+id)
	_, body := b.follow(resp)
	assert.Contains(t, body, "Review added.")
	assert.Contains(t, body, "Fluffy and sweet")
	assert.Contains(t, body, "alice likes this")

	resp, _ = b.post("/add_review/"+id, url.Values{"content": {"Again"}})
	_, body = b.follow(resp)
	assert.Contains(t, body, "You have made a review before.")
	assert.NotContains(t, body, "Again")

	resp, _ = b.post("/add_review/"+id, url.Values{"content": {""}})
	_, body = b.follow(resp)
	assert.Contains(t, body, "Please fill in the review.")
}

func TestAnnouncements(t *testing.T) {
	b, _ := newBrowser(t)
	b.registerAndLogin("alice", "pw")

	resp, _ := b.post("/user_new_announcement", url.Values{"link": {"https://example.com/fair"}, "content": {"Food fair on Sunday"}})
	assertRedirect(t, resp, "/announcement")
	_, body := b.follow(resp)
	assert.Contains(t, body, "New announcement posted")
	assert.Contains(t, body, "Food fair on Sunday")
	assert.Contains(t, body, "https://example.com/fair")

	resp, _ = b.post("/user_new_announcement", url.Values{"link": {"not a url"}, "content": {"x"}})
	_, body = b.follow(resp)
	assert.Contains(t, body, "Please fill the form correctly")
}

func TestMetricsEndpoint(t *testing.T) {
	b, _ := newBrowser(t)

	resp, body := b.get("/metrics")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "recipebox_recipes_created_total")
}
