// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/trip-planner/backend/config"
	"github.com/trip-planner/backend/internal/infra/dependency"
	integrationcache "github.com/trip-planner/backend/internal/integration/cache"
	"github.com/trip-planner/backend/internal/integration/persistence/model"
	"github.com/trip-planner/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri                string
	headers            map[string]string
	client             *http.Client
	response           *response
	db                 *mock.Db
	serverPort         int
	accessToken        string
	refreshToken       string
	currentUserID      uuid.UUID
	userIDs            map[string]uuid.UUID
	currentGroupID     uuid.UUID
	currentMemberID    uuid.UUID
	currentInviteToken string
	currentTripID      uuid.UUID
	currentDayID       uuid.UUID
	otherDayID         uuid.UUID
	lastCreatedID      uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("EMAIL_WORKER_ENABLED", "false")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		userIDs:    make(map[string]uuid.UUID),
		db: mock.NewDb("trip_planner", map[string]any{
			"users":                  &model.UserModel{},
			"refresh_tokens":         &model.RefreshTokenModel{},
			"groups":                 &model.GroupModel{},
			"group_members":          &model.GroupMemberModel{},
			"group_invites":          &model.GroupInviteModel{},
			"external_participants":  &model.ExternalParticipantModel{},
			"trips":                  &model.TripModel{},
			"trip_days":              &model.TripDayModel{},
			"events":                 &model.EventModel{},
			"points_of_interest":     &model.PoiModel{},
			"expenses":               &model.ExpenseModel{},
			"expense_participants":   &model.ExpenseParticipantModel{},
			"expense_line_items":     &model.ExpenseLineItemModel{},
			"expense_itemized_lists": &model.ItemizedListModel{},
			"expense_items":          &model.ExpenseItemModel{},
			"email_queue":            &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^the user "([^"]*)" exists$`, test.theUserExists)
	// Scenarios switch the logged-in user mid-flow, so this step must match
	// any step type, not just Given.
	ctx.Step(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Group setup steps
	ctx.Given(`^a group named "([^"]*)" exists$`, test.aGroupNamedExists)
	ctx.Given(`^"([^"]*)" is a member of the group$`, test.isAMemberOfTheGroup)
	ctx.Given(`^a pending invite for "([^"]*)" exists$`, test.aPendingInviteForExists)
	ctx.Given(`^an expired invite for "([^"]*)" exists$`, test.anExpiredInviteForExists)
	ctx.Given(`^an external participant named "([^"]*)" exists in the group$`, test.anExternalParticipantNamedExists)

	// Trip setup steps
	ctx.Given(`^a trip named "([^"]*)" from "([^"]*)" to "([^"]*)" exists$`, test.aTripNamedFromToExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.userIDs = make(map[string]uuid.UUID)
	t.currentGroupID = uuid.Nil
	t.currentMemberID = uuid.Nil
	t.currentInviteToken = ""
	t.currentTripID = uuid.Nil
	t.currentDayID = uuid.Nil
	t.otherDayID = uuid.Nil
	t.lastCreatedID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			balanceCache := integrationcache.NewRedisBalanceCache(mock.NewRedis(), time.Minute)

			injector, err := dependency.NewInjector(cfg, testDB.DbConn, balanceCache)
			if err != nil {
				panic(fmt.Sprintf("failed to wire test server: %v", err))
			}
			engine := injector.Router.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID
	t.userIDs[email] = userID

	user := &model.UserModel{
		ID:                 userID,
		Email:              email,
		Name:               name,
		PasswordHash:       hashPassword(password),
		EmailNotifications: true,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokensFor("test@example.com")
}

// theUserExists creates a user with the given email if they don't already exist.
func (t *testContext) theUserExists(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err == nil {
		t.userIDs[email] = userModel.ID
		return nil
	}

	userID := uuid.New()
	t.userIDs[email] = userID
	user := &model.UserModel{
		ID:                 userID,
		Email:              email,
		Name:               "Test User " + email,
		PasswordHash:       hashPassword("SecurePass123!"),
		EmailNotifications: true,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

// iAmLoggedInAs switches the current logged in user to the specified email.
func (t *testContext) iAmLoggedInAs(email string) error {
	if err := t.theUserExists(email); err != nil {
		return err
	}

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	t.currentUserID = userModel.ID

	return t.issueTokensFor(email)
}

func (t *testContext) issueTokensFor(email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "trip-planner",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "trip-planner",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	// Store refresh token in database so logout and refresh find it
	var existingToken model.RefreshTokenModel
	if err := t.db.DbConn.Where("user_id = ?", t.currentUserID).First(&existingToken).Error; err == nil {
		existingToken.Token = t.refreshToken
		existingToken.Invalidated = false
		existingToken.ExpiresAt = now.Add(7 * 24 * time.Hour)
		return t.db.DbConn.Save(&existingToken).Error
	}

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

// aGroupNamedExists creates a group owned by the current user with an
// admin membership.
func (t *testContext) aGroupNamedExists(name string) error {
	if t.currentUserID == uuid.Nil {
		return errors.New("no current user, log in first")
	}

	groupID := uuid.New()
	t.currentGroupID = groupID
	now := time.Now().UTC()

	groupModel := &model.GroupModel{
		ID:        groupID,
		Name:      name,
		CreatedBy: t.currentUserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(groupModel).Error; err != nil {
		return err
	}

	memberModel := &model.GroupMemberModel{
		ID:       uuid.New(),
		GroupID:  groupID,
		UserID:   t.currentUserID,
		Role:     "admin",
		JoinedAt: now,
	}
	return t.db.DbConn.Create(memberModel).Error
}

// isAMemberOfTheGroup adds an existing user to the current group with the
// member role.
func (t *testContext) isAMemberOfTheGroup(email string) error {
	if err := t.theUserExists(email); err != nil {
		return err
	}

	memberID := uuid.New()
	t.currentMemberID = memberID
	memberModel := &model.GroupMemberModel{
		ID:       memberID,
		GroupID:  t.currentGroupID,
		UserID:   t.userIDs[email],
		Role:     "member",
		JoinedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(memberModel).Error
}

func (t *testContext) aPendingInviteForExists(email string) error {
	t.currentInviteToken = uuid.New().String()
	now := time.Now().UTC()

	inviteModel := &model.GroupInviteModel{
		ID:        uuid.New(),
		GroupID:   t.currentGroupID,
		Email:     email,
		Token:     t.currentInviteToken,
		InvitedBy: t.currentUserID,
		Status:    "pending",
		ExpiresAt: now.Add(7 * 24 * time.Hour),
		CreatedAt: now,
	}
	return t.db.DbConn.Create(inviteModel).Error
}

func (t *testContext) anExpiredInviteForExists(email string) error {
	t.currentInviteToken = uuid.New().String()
	now := time.Now().UTC()

	inviteModel := &model.GroupInviteModel{
		ID:        uuid.New(),
		GroupID:   t.currentGroupID,
		Email:     email,
		Token:     t.currentInviteToken,
		InvitedBy: t.currentUserID,
		Status:    "pending",
		ExpiresAt: now.Add(-1 * time.Hour),
		CreatedAt: now.Add(-8 * 24 * time.Hour),
	}
	return t.db.DbConn.Create(inviteModel).Error
}

func (t *testContext) anExternalParticipantNamedExists(name string) error {
	now := time.Now().UTC()
	participantModel := &model.ExternalParticipantModel{
		ID:         uuid.New(),
		GroupID:    t.currentGroupID,
		Name:       name,
		LastUsedAt: now,
		CreatedAt:  now,
	}
	return t.db.DbConn.Create(participantModel).Error
}

// aTripNamedFromToExists creates a trip in the current group along with its
// generated day rows, one per date in the range.
func (t *testContext) aTripNamedFromToExists(name, startDate, endDate string) error {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	tripID := uuid.New()
	t.currentTripID = tripID
	// Seeding a second trip keeps a handle on the previous trip's first day
	if t.currentDayID != uuid.Nil {
		t.otherDayID = t.currentDayID
	}
	now := time.Now().UTC()

	tripModel := &model.TripModel{
		ID:        tripID,
		GroupID:   t.currentGroupID,
		Name:      name,
		StartDate: start,
		EndDate:   end,
		CreatedBy: t.currentUserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(tripModel).Error; err != nil {
		return err
	}

	dayNumber := 1
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		dayModel := &model.TripDayModel{
			ID:        uuid.New(),
			TripID:    tripID,
			Date:      date,
			DayNumber: dayNumber,
			CreatedAt: now,
		}
		if err := t.db.DbConn.Create(dayModel).Error; err != nil {
			return err
		}
		if dayNumber == 1 {
			t.currentDayID = dayModel.ID
		}
		dayNumber++
	}

	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{group_id}}", t.currentGroupID.String())
	content = strings.ReplaceAll(content, "{{member_id}}", t.currentMemberID.String())
	content = strings.ReplaceAll(content, "{{invite_token}}", t.currentInviteToken)
	content = strings.ReplaceAll(content, "{{trip_id}}", t.currentTripID.String())
	content = strings.ReplaceAll(content, "{{day_id}}", t.currentDayID.String())
	content = strings.ReplaceAll(content, "{{other_day_id}}", t.otherDayID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastCreatedID.String())

	for email, id := range t.userIDs {
		content = strings.ReplaceAll(content, "{{user:"+email+"}}", id.String())
	}

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
		t.captureIdentifiers(responseBody)
	}

	return nil
}

// captureIdentifiers keeps track of ids returned by the API so later steps
// can reference them through placeholders.
func (t *testContext) captureIdentifiers(responseBody map[string]any) {
	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastCreatedID = id

			// Group responses carry a members list, trip responses a days list
			if _, hasMembers := responseBody["members"]; hasMembers {
				t.currentGroupID = id
			} else if _, hasDays := responseBody["days"]; hasDays {
				t.currentTripID = id
			}
		}
	}

	if token, ok := responseBody["token"].(string); ok && token != "" {
		t.currentInviteToken = token
	}

	if groupID, ok := responseBody["group_id"].(string); ok {
		if gid, err := uuid.Parse(groupID); err == nil && t.currentGroupID == uuid.Nil {
			t.currentGroupID = gid
		}
	}

	if days, ok := responseBody["days"].([]any); ok && len(days) > 0 {
		if day, ok := days[0].(map[string]any); ok {
			if idStr, ok := day["id"].(string); ok {
				if id, err := uuid.Parse(idStr); err == nil {
					t.currentDayID = id
				}
			}
		}
	}

	if members, ok := responseBody["members"].([]any); ok && len(members) > 0 {
		// Track the most recently added plain member
		for i := len(members) - 1; i >= 0; i-- {
			if member, ok := members[i].(map[string]any); ok {
				if role, ok := member["role"].(string); ok && role == "member" {
					if idStr, ok := member["id"].(string); ok {
						if id, err := uuid.Parse(idStr); err == nil {
							t.currentMemberID = id
							break
						}
					}
				}
			}
		}
	}
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
