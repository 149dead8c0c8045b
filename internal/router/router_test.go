package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/myseringan/texnokross-bolt-sub000/internal/config"
	"github.com/myseringan/texnokross-bolt-sub000/internal/constants"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/provider"
)

func newTestEngine(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Admin{}, &models.User{}, &models.PasswordResetCode{},
		&models.Category{}, &models.Product{}, &models.CartItem{},
		&models.Banner{}, &models.Order{}, &models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err := db.Create(&models.Admin{Username: "admin", PasswordHash: string(hash)}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.JWT = config.JWTConfig{SecretKey: "admin-secret", ExpireHours: 1}
	cfg.UserJWT = config.JWTConfig{SecretKey: "user-secret", ExpireHours: 1}
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 6}
	cfg.Security.LoginRateLimit = config.LoginRateLimitConfig{WindowSeconds: 60, MaxAttempts: 100, BlockSeconds: 60}

	container, err := provider.New(cfg, db)
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	return New(container)
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func do(t *testing.T, engine http.Handler, method, path, body string, header map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: bad envelope %q: %v", method, path, rec.Body.String(), err)
	}
	return rec, env
}

func TestHealthz(t *testing.T) {
	engine := newTestEngine(t)
	rec, env := do(t, engine, "GET", "/healthz", "", nil)
	if rec.Code != 200 || env.StatusCode != 200 {
		t.Fatalf("healthz: %d %+v", rec.Code, env)
	}
}

func TestPublicCatalogDefaults(t *testing.T) {
	engine := newTestEngine(t)

	rec, env := do(t, engine, "GET", "/api/categories", "", nil)
	if rec.Code != 200 {
		t.Fatalf("categories: %d", rec.Code)
	}
	var categories []models.Category
	if err := json.Unmarshal(env.Data, &categories); err != nil {
		t.Fatalf("decode categories: %v", err)
	}
	if len(categories) == 0 {
		t.Fatalf("empty registry must fall back to defaults")
	}

	rec, env = do(t, engine, "GET", "/api/banners", "", nil)
	if rec.Code != 200 {
		t.Fatalf("banners: %d", rec.Code)
	}
	var banners []models.Banner
	if err := json.Unmarshal(env.Data, &banners); err != nil {
		t.Fatalf("decode banners: %v", err)
	}
	if len(banners) != 1 {
		t.Fatalf("empty banner table must fall back to one default, got %d", len(banners))
	}
}

func TestSessionHeaderMinting(t *testing.T) {
	engine := newTestEngine(t)

	rec, _ := do(t, engine, "GET", "/api/cart", "", nil)
	minted := rec.Header().Get(constants.SessionIDHeader)
	if minted == "" {
		t.Fatalf("server must mint a session token")
	}

	rec, _ = do(t, engine, "GET", "/api/cart", "", map[string]string{constants.SessionIDHeader: minted})
	if got := rec.Header().Get(constants.SessionIDHeader); got != minted {
		t.Fatalf("server must echo the client token, got %q want %q", got, minted)
	}
}

func TestSessionTokensDistinctPerClient(t *testing.T) {
	engine := newTestEngine(t)

	rec, _ := do(t, engine, "GET", "/api/cart", "", nil)
	first := rec.Header().Get(constants.SessionIDHeader)
	rec, _ = do(t, engine, "GET", "/api/cart", "", nil)
	second := rec.Header().Get(constants.SessionIDHeader)
	if first == "" || second == "" {
		t.Fatalf("both clients must get a token, got %q and %q", first, second)
	}
	if first == second {
		t.Fatalf("clients without a token must not share a cart session, both got %q", first)
	}
}

func TestAdminLoginAndGuard(t *testing.T) {
	engine := newTestEngine(t)

	rec, _ := do(t, engine, "GET", "/api/admin/products", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated admin read: expected 401, got %d", rec.Code)
	}

	rec, _ = do(t, engine, "POST", "/api/admin/login", `{"username":"admin","password":"wrong"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", rec.Code)
	}

	rec, env := do(t, engine, "POST", "/api/admin/login", `{"username":"admin","password":"admin123"}`, nil)
	if rec.Code != 200 {
		t.Fatalf("login: %d %s", rec.Code, env.Msg)
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil || login.Token == "" {
		t.Fatalf("login token missing: %s", env.Data)
	}
	authed := map[string]string{"Authorization": "Bearer " + login.Token}

	rec, _ = do(t, engine, "GET", "/api/admin/products", "", authed)
	if rec.Code != 200 {
		t.Fatalf("authed admin read: expected 200, got %d", rec.Code)
	}
}

func TestAdminProductFlowReachesStorefront(t *testing.T) {
	engine := newTestEngine(t)

	_, env := do(t, engine, "POST", "/api/admin/login", `{"username":"admin","password":"admin123"}`, nil)
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil {
		t.Fatalf("login: %v", err)
	}
	authed := map[string]string{"Authorization": "Bearer " + login.Token}

	rec, env := do(t, engine, "POST", "/api/admin/products",
		`{"name":"Samsung televizor 55","price":"7500000"}`, authed)
	if rec.Code != 200 {
		t.Fatalf("create product: %d %s", rec.Code, env.Msg)
	}
	var created models.Product
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode product: %v", err)
	}

	rec, env = do(t, engine, "GET", "/api/products", "", nil)
	if rec.Code != 200 {
		t.Fatalf("storefront list: %d", rec.Code)
	}
	var listed []models.Product
	if err := json.Unmarshal(env.Data, &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("storefront must see the admin product: %+v", listed)
	}

	rec, _ = do(t, engine, "DELETE", "/api/admin/products/"+created.ID, "", authed)
	if rec.Code != 200 {
		t.Fatalf("delete: %d", rec.Code)
	}
	rec, _ = do(t, engine, "GET", "/api/products/"+created.ID, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("deleted product must 404 on storefront, got %d", rec.Code)
	}
}

func TestStorefrontLocalizedCatalog(t *testing.T) {
	engine := newTestEngine(t)

	_, env := do(t, engine, "POST", "/api/admin/login", `{"username":"admin","password":"admin123"}`, nil)
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil {
		t.Fatalf("login: %v", err)
	}
	authed := map[string]string{"Authorization": "Bearer " + login.Token}

	_, env = do(t, engine, "POST", "/api/admin/products",
		`{"name":"Muzlatgich","name_ru":"Холодильник","price":"3000000"}`, authed)
	var translated models.Product
	if err := json.Unmarshal(env.Data, &translated); err != nil {
		t.Fatalf("decode product: %v", err)
	}
	_, env = do(t, engine, "POST", "/api/admin/products",
		`{"name":"Changyutgich","price":"900000"}`, authed)
	var untranslated models.Product
	if err := json.Unmarshal(env.Data, &untranslated); err != nil {
		t.Fatalf("decode product: %v", err)
	}

	rec, env := do(t, engine, "GET", "/api/products/"+translated.ID+"?lang=ru", "", nil)
	if rec.Code != 200 {
		t.Fatalf("ru read: %d", rec.Code)
	}
	var got models.Product
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Холодильник" {
		t.Fatalf("ru locale must surface the russian name, got %q", got.Name)
	}

	_, env = do(t, engine, "GET", "/api/products/"+untranslated.ID+"?lang=ru", "", nil)
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Changyutgich" {
		t.Fatalf("missing translation must fall back to the primary name, got %q", got.Name)
	}

	_, env = do(t, engine, "GET", "/api/products/"+translated.ID, "", nil)
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Muzlatgich" {
		t.Fatalf("default locale must keep the primary name, got %q", got.Name)
	}
}

func TestCartAndCheckoutFlow(t *testing.T) {
	engine := newTestEngine(t)

	_, env := do(t, engine, "POST", "/api/admin/login", `{"username":"admin","password":"admin123"}`, nil)
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil {
		t.Fatalf("login: %v", err)
	}
	authed := map[string]string{"Authorization": "Bearer " + login.Token}

	_, env = do(t, engine, "POST", "/api/admin/products",
		`{"name":"Artel muzlatgich","price":"3000000"}`, authed)
	var product models.Product
	if err := json.Unmarshal(env.Data, &product); err != nil {
		t.Fatalf("decode product: %v", err)
	}

	session := map[string]string{constants.SessionIDHeader: "cart-sess-1"}
	body := fmt.Sprintf(`{"product_id":%q,"quantity":2}`, product.ID)
	rec, env := do(t, engine, "POST", "/api/cart/items", body, session)
	if rec.Code != 200 {
		t.Fatalf("add to cart: %d %s", rec.Code, env.Msg)
	}
	var cart struct {
		Items     []models.CartItem `json:"items"`
		Total     string            `json:"total"`
		ItemCount int               `json:"item_count"`
	}
	if err := json.Unmarshal(env.Data, &cart); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if cart.ItemCount != 2 || cart.Total != "6000000" {
		t.Fatalf("cart totals wrong: %+v", cart)
	}

	rec, env = do(t, engine, "POST", "/api/orders",
		`{"phone":"90 123 45 67","customer_name":"Aziz","address":"Toshkent"}`, session)
	if rec.Code != 200 {
		t.Fatalf("checkout: %d %s", rec.Code, env.Msg)
	}
	var order models.Order
	if err := json.Unmarshal(env.Data, &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.CustomerPhone != "+998901234567" || len(order.Items) != 1 {
		t.Fatalf("order wrong: %+v", order)
	}

	rec, env = do(t, engine, "GET", "/api/cart", "", session)
	if err := json.Unmarshal(env.Data, &cart); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("cart must be empty after checkout: %+v", cart.Items)
	}

	rec, env = do(t, engine, "PUT", fmt.Sprintf("/api/admin/orders/%d/status", order.ID),
		`{"status":"confirmed"}`, authed)
	if rec.Code != 200 {
		t.Fatalf("status update: %d %s", rec.Code, env.Msg)
	}
	var updated models.Order
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if updated.Status != "confirmed" {
		t.Fatalf("status not applied: %+v", updated)
	}
}

func TestUserAuthFlow(t *testing.T) {
	engine := newTestEngine(t)

	rec, env := do(t, engine, "POST", "/api/auth/login", `{"phone":"901234567","password":"parol123"}`, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown phone login: expected 404, got %d", rec.Code)
	}
	if env.Msg != "Bu raqam ro'yxatdan o'tmagan" {
		t.Fatalf("unknown phone login must answer the unregistered-number message, got %q", env.Msg)
	}

	rec, env = do(t, engine, "POST", "/api/auth/register",
		`{"phone":"901234567","password":"parol123","name":"Aziz"}`, nil)
	if rec.Code != 200 {
		t.Fatalf("register: %d %s", rec.Code, env.Msg)
	}
	var auth struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &auth); err != nil || auth.Token == "" {
		t.Fatalf("register payload: %s", env.Data)
	}

	rec, env = do(t, engine, "GET", "/api/auth/me", "", map[string]string{"Authorization": "Bearer " + auth.Token})
	if rec.Code != 200 {
		t.Fatalf("me: %d", rec.Code)
	}
	var me models.User
	if err := json.Unmarshal(env.Data, &me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me.Phone != "+998901234567" {
		t.Fatalf("me wrong account: %+v", me)
	}

	rec, _ = do(t, engine, "GET", "/api/auth/me", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous me: expected 401, got %d", rec.Code)
	}
}
