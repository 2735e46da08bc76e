//go:build integration

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
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sendhur-chits/backend/internal/application/usecase/auction"
	"github.com/sendhur-chits/backend/internal/application/usecase/auth"
	"github.com/sendhur-chits/backend/internal/application/usecase/collection"
	"github.com/sendhur-chits/backend/internal/application/usecase/daysheet"
	"github.com/sendhur-chits/backend/internal/application/usecase/group"
	"github.com/sendhur-chits/backend/internal/application/usecase/ledger"
	"github.com/sendhur-chits/backend/internal/application/usecase/member"
	"github.com/sendhur-chits/backend/internal/application/usecase/notification"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	"github.com/sendhur-chits/backend/internal/infra/cache"
	"github.com/sendhur-chits/backend/internal/infra/server/router"
	"github.com/sendhur-chits/backend/internal/integration/adapters"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/controller"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/middleware"
	"github.com/sendhur-chits/backend/internal/integration/persistence"
	"github.com/sendhur-chits/backend/internal/integration/persistence/model"
	"github.com/sendhur-chits/backend/test/integration/mock"
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
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	refreshToken      string
	currentEmployeeID uuid.UUID
	currentGroupID    uuid.UUID
	currentAuctionID  uuid.UUID
	memberIDs         []uuid.UUID
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
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("sendhur_chits", map[string]any{
			"employees":          &model.EmployeeModel{},
			"refresh_tokens":     &model.RefreshTokenModel{},
			"members":            &model.MemberModel{},
			"chit_groups":        &model.GroupModel{},
			"group_members":      &model.GroupMemberModel{},
			"auction_records":    &model.AuctionRecordModel{},
			"collection_records": &model.CollectionRecordModel{},
			"payment_records":    &model.PaymentRecordModel{},
			"credit_records":     &model.CreditRecordModel{},
			"expense_records":    &model.ExpenseRecordModel{},
			"salary_records":     &model.SalaryRecordModel{},
			"counters":           &model.CounterModel{},
			"notification_jobs":  &model.NotificationJobModel{},
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

	// Employee setup steps
	ctx.Given(`^an admin exists with code "([^"]*)" and password "([^"]*)"$`, test.anAdminExistsWithCodeAndPassword)
	ctx.Given(`^an employee exists with code "([^"]*)" and password "([^"]*)"$`, test.anEmployeeExistsWithCodeAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Member and group setup steps
	ctx.Given(`^a member exists with phone "([^"]*)" and due "([^"]*)"$`, test.aMemberExistsWithPhoneAndDue)
	ctx.Given(`^a chit group exists with those members$`, test.aChitGroupExistsWithThoseMembers)
	ctx.Given(`^the first auction is settled with bid "([^"]*)"$`, test.theFirstAuctionIsSettledWithBid)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps, usable both as setup and as the action under test
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
	ctx.Then(`^the member "([^"]*)" should have due "([^"]*)"$`, test.theMemberShouldHaveDue)
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
	t.currentEmployeeID = uuid.Nil
	t.currentGroupID = uuid.Nil
	t.currentAuctionID = uuid.Nil
	t.memberIDs = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Repositories
			employeeRepo := persistence.NewEmployeeRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			memberRepo := persistence.NewMemberRepository(testDB.DbConn)
			groupRepo := persistence.NewGroupRepository(testDB.DbConn)
			auctionRepo := persistence.NewAuctionRepository(testDB.DbConn)
			collectionRepo := persistence.NewCollectionRepository(testDB.DbConn)
			counterRepo := persistence.NewCounterRepository(testDB.DbConn)
			ledgerRepo := persistence.NewLedgerRepository(testDB.DbConn)
			notificationQueueRepo := persistence.NewNotificationQueueRepository(testDB.DbConn)

			// Adapters
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour, tokenRepo)
			reminderGate := cache.NewReminderGate(mock.NewRedis())

			// Auth use cases
			loginUseCase := auth.NewLoginEmployeeUseCase(employeeRepo, passwordService, tokenService)
			registerUseCase := auth.NewRegisterEmployeeUseCase(employeeRepo, counterRepo, passwordService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(employeeRepo, tokenService)
			logoutUseCase := auth.NewLogoutUseCase(tokenService)

			// Group use cases
			createGroupUseCase := group.NewCreateGroupUseCase(groupRepo, memberRepo)
			listGroupsUseCase := group.NewListGroupsUseCase(groupRepo)
			getGroupUseCase := group.NewGetGroupUseCase(groupRepo, auctionRepo)
			addMemberUseCase := group.NewAddMemberUseCase(groupRepo, memberRepo)

			// Member use cases
			createMemberUseCase := member.NewCreateMemberUseCase(memberRepo, counterRepo)
			listMembersUseCase := member.NewListMembersUseCase(memberRepo)
			getMemberUseCase := member.NewGetMemberUseCase(memberRepo, groupRepo)
			reconcileDueUseCase := member.NewReconcileDueUseCase(memberRepo, groupRepo, auctionRepo, collectionRepo)
			queueDueReminderUseCase := notification.NewQueueDueReminderUseCase(memberRepo, notificationQueueRepo, reminderGate)

			// Auction use cases
			startAuctionUseCase := auction.NewStartAuctionUseCase(groupRepo, auctionRepo)
			listAuctionsUseCase := auction.NewListAuctionsUseCase(groupRepo, auctionRepo)

			// Collection use cases
			recordCollectionUseCase := collection.NewRecordCollectionUseCase(groupRepo, memberRepo, auctionRepo, collectionRepo, notificationQueueRepo)
			listCollectionsUseCase := collection.NewListCollectionsUseCase(collectionRepo)
			dueSheetUseCase := collection.NewDueSheetUseCase(groupRepo, memberRepo, auctionRepo, collectionRepo)

			// Ledger use cases
			recordPaymentUseCase := ledger.NewRecordPaymentUseCase(auctionRepo, ledgerRepo)
			recordEntriesUseCase := ledger.NewRecordEntriesUseCase(ledgerRepo, employeeRepo)

			// Day sheet use cases
			buildDaySheetUseCase := daysheet.NewBuildDaySheetUseCase(ledgerRepo)
			masterLedgerUseCase := daysheet.NewMasterLedgerUseCase(ledgerRepo)

			// Controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			authController := controller.NewAuthController(loginUseCase, registerUseCase, refreshTokenUseCase, logoutUseCase)
			groupController := controller.NewGroupController(createGroupUseCase, listGroupsUseCase, getGroupUseCase, addMemberUseCase)
			memberController := controller.NewMemberController(createMemberUseCase, listMembersUseCase, getMemberUseCase, reconcileDueUseCase, queueDueReminderUseCase)
			auctionController := controller.NewAuctionController(startAuctionUseCase, listAuctionsUseCase)
			collectionController := controller.NewCollectionController(recordCollectionUseCase, listCollectionsUseCase, dueSheetUseCase)
			ledgerController := controller.NewLedgerController(recordPaymentUseCase, recordEntriesUseCase)
			daySheetController := controller.NewDaySheetController(buildDaySheetUseCase, masterLedgerUseCase)

			// Middleware
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(healthController, authController, groupController, memberController, auctionController, collectionController, ledgerController, daySheetController, loginRateLimiter, authMiddleware)
			engine := r.Setup("test")

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

func (t *testContext) anAdminExistsWithCodeAndPassword(code, password string) error {
	return t.createEmployee(code, password, entity.EmployeeRoleAdmin)
}

func (t *testContext) anEmployeeExistsWithCodeAndPassword(code, password string) error {
	return t.createEmployee(code, password, entity.EmployeeRoleEmployee)
}

func (t *testContext) createEmployee(code, password string, role entity.EmployeeRole) error {
	employeeID := uuid.New()
	t.currentEmployeeID = employeeID

	now := time.Now().UTC()
	employee := &model.EmployeeModel{
		ID:           employeeID,
		EmployeeID:   code,
		FullName:     "Staff " + code,
		Phone:        fmt.Sprintf("9%09d", len(code)*100000+int(now.UnixNano()%100000)),
		Role:         string(role),
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(employee).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs signs tokens for the employee with the given code,
// creating an employee account for the code when none exists.
func (t *testContext) iAmLoggedInAs(code string) error {
	var employeeModel model.EmployeeModel
	if err := t.db.DbConn.Where("employee_id = ?", code).First(&employeeModel).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		role := entity.EmployeeRoleEmployee
		if strings.HasPrefix(code, "ADM") {
			role = entity.EmployeeRoleAdmin
		}
		if err := t.createEmployee(code, "DefaultPass123!", role); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("employee_id = ?", code).First(&employeeModel).Error; err != nil {
			return err
		}
	}

	t.currentEmployeeID = employeeModel.ID
	now := time.Now().UTC()

	accessToken, err := signTestJWT(employeeModel, "access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessToken

	refreshToken, err := signTestJWT(employeeModel, "refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshToken

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		EmployeeID:  employeeModel.ID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func signTestJWT(employee model.EmployeeModel, tokenType string, now time.Time, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"employee_id":   employee.ID.String(),
		"employee_code": employee.EmployeeID,
		"role":          employee.Role,
		"token_type":    tokenType,
		"exp":           jwt.NewNumericDate(now.Add(duration)),
		"iat":           jwt.NewNumericDate(now),
		"nbf":           jwt.NewNumericDate(now),
		"iss":           "sendhur-chits",
		"sub":           employee.ID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aMemberExistsWithPhoneAndDue(phone, due string) error {
	dueAmount, err := decimal.NewFromString(due)
	if err != nil {
		return fmt.Errorf("invalid due amount '%s': %w", due, err)
	}

	now := time.Now().UTC()
	memberModel := &model.MemberModel{
		ID:        uuid.New(),
		Username:  fmt.Sprintf("CHT%04d", len(t.memberIDs)+1),
		FullName:  "Member " + phone,
		Phone:     phone,
		DueAmount: dueAmount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(memberModel).Error; err != nil {
		return err
	}

	t.memberIDs = append(t.memberIDs, memberModel.ID)
	return nil
}

// aChitGroupExistsWithThoseMembers creates a twenty-seat group seating
// every member created so far, ready for its first auction.
func (t *testContext) aChitGroupExistsWithThoseMembers(ctx context.Context) error {
	if len(t.memberIDs) < 2 {
		return errors.New("at least two members are required to seed a group")
	}

	now := time.Now().UTC()
	groupEntity := &entity.Group{
		ID:                uuid.New(),
		GroupName:         "Sendhur Weekly A",
		TotalPeople:       20,
		TotalAmount:       decimal.NewFromInt(100000),
		Tenure:            20,
		StartDate:         now,
		Rate:              decimal.NewFromInt(5000),
		CommissionPercent: decimal.NewFromInt(5),
		BiddingType:       entity.BiddingTypeOpen,
		MinBid:            decimal.NewFromInt(70000),
		NextAuctionNumber: 1,
		AuctionMonth:      now.Format("2006-01"),
		CreatedBy:         t.currentEmployeeID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	groupRepo := persistence.NewGroupRepository(t.db.DbConn)
	if err := groupRepo.Create(ctx, groupEntity, t.memberIDs); err != nil {
		return err
	}

	t.currentGroupID = groupEntity.ID
	return nil
}

// theFirstAuctionIsSettledWithBid settles auction 1 through the API
// with the first seeded member as winner.
func (t *testContext) theFirstAuctionIsSettledWithBid(bid string) error {
	if t.currentGroupID == uuid.Nil || len(t.memberIDs) == 0 {
		return errors.New("a group with members must exist before settling an auction")
	}

	body := fmt.Sprintf(`{
		"auction_number": 1,
		"winner_member_id": "%s",
		"winning_bid_amount": %s,
		"auction_date": "%s"
	}`, t.memberIDs[0], bid, time.Now().UTC().Format("2006-01-02"))

	path := fmt.Sprintf("/api/v1/groups/%s/auctions", t.currentGroupID)
	if err := t.executeRequest(http.MethodPost, path, []byte(body)); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("auction settlement failed with status %d: %v", t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
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
	content = strings.ReplaceAll(content, "{{auction_id}}", t.currentAuctionID.String())
	content = strings.ReplaceAll(content, "{{employee_id}}", t.currentEmployeeID.String())

	for i, id := range t.memberIDs {
		placeholder := fmt.Sprintf("{{member_id_%d}}", i+1)
		content = strings.ReplaceAll(content, placeholder, id.String())
	}
	if len(t.memberIDs) > 0 {
		content = strings.ReplaceAll(content, "{{member_id}}", t.memberIDs[0].String())
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

		// Capture tokens issued by login/refresh
		if token, ok := responseBody["access_token"].(string); ok && token != "" {
			t.accessToken = token
		}
		if token, ok := responseBody["refresh_token"].(string); ok && token != "" {
			t.refreshToken = token
		}

		// Capture ids from group creation and auction settlement responses
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				if _, hasGroupName := responseBody["group_name"]; hasGroupName {
					t.currentGroupID = id
				}
				if _, hasBid := responseBody["winning_bid_amount"]; hasBid {
					t.currentAuctionID = id
				}
			}
		}
	}

	return nil
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
	if entityModel, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entityModel).Elem()
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

	if entityModel, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entityModel).Elem()
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

// theMemberShouldHaveDue checks the stored due accumulator for the
// nth seeded member (1-based).
func (t *testContext) theMemberShouldHaveDue(position, due string) error {
	index, err := strconv.Atoi(position)
	if err != nil || index < 1 || index > len(t.memberIDs) {
		return fmt.Errorf("invalid member position '%s'", position)
	}

	expected, err := decimal.NewFromString(due)
	if err != nil {
		return fmt.Errorf("invalid due amount '%s': %w", due, err)
	}

	var memberModel model.MemberModel
	if err := t.db.DbConn.Where("id = ?", t.memberIDs[index-1]).First(&memberModel).Error; err != nil {
		return err
	}

	if !memberModel.DueAmount.Equal(expected) {
		return fmt.Errorf("member %d expected due %s, got %s", index, expected, memberModel.DueAmount)
	}
	return nil
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
