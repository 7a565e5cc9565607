package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fiscal-tracker/backend/internal/integration/persistence/model"
)

const defaultTestPassword = "SecurePass123!"

// dayOffsetPattern matches {{today}}, {{today+N}} and {{today-N}}
// placeholders, rendered as YYYY-MM-DD dates relative to now.
var dayOffsetPattern = regexp.MustCompile(`\{\{today([+-]\d+)?\}\}`)

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, defaultTestPassword, "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:                 userID,
		Email:              email,
		Name:               name,
		PasswordHash:       hashPassword(password),
		EmailNotifications: true,
		DueDateReminders:   true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashed)
}

// iAmLoggedInAs ensures the user exists and logs in through the real
// endpoint so tokens carry whatever claims the token service issues.
func (t *testContext) iAmLoggedInAs(email string) error {
	t.startServer()

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, defaultTestPassword, "Test User "+email); err != nil {
			return err
		}
	} else {
		t.currentUserID = userModel.ID
	}

	payload, _ := json.Marshal(map[string]any{
		"email":    email,
		"password": defaultTestPassword,
	})
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %v", t.response.status, t.response.body)
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return errors.New("login response is not a JSON object")
	}
	t.accessToken, _ = body["access_token"].(string)
	t.refreshToken, _ = body["refresh_token"].(string)
	if t.accessToken == "" {
		return errors.New("login response did not include an access token")
	}

	t.response = nil
	return nil
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	tokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	return t.db.DbConn.Create(tokenModel).Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	tokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	return t.db.DbConn.Create(tokenModel).Error
}

func (t *testContext) aClientNamedExists(name string) error {
	clientID := uuid.New()
	t.currentClientID = clientID

	now := time.Now().UTC()
	clientModel := &model.ClientModel{
		ID:        clientID,
		Name:      name,
		TaxID:     "12.345.678/0001-90",
		Email:     "contato@example.com",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(clientModel).Error
}

func (t *testContext) aResponsibleNamedExists(name string) error {
	responsibleID := uuid.New()
	t.currentResponsibleID = responsibleID

	now := time.Now().UTC()
	responsibleModel := &model.ResponsibleModel{
		ID:        responsibleID,
		Name:      name,
		Email:     "responsavel@example.com",
		Role:      "contador",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(responsibleModel).Error
}

func (t *testContext) anObligationOfKindIsDueInDays(name, kind string, days int) error {
	obligationID := uuid.New()
	t.currentObligationID = obligationID

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	obligationModel := &model.ObligationModel{
		ID:         obligationID,
		Name:       name,
		Kind:       kind,
		DueDate:    today.AddDate(0, 0, days),
		Completed:  false,
		Active:     true,
		LastEditor: "seed",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return t.db.DbConn.Create(obligationModel).Error
}

func (t *testContext) aCompletedObligationOfKindExists(name, kind string) error {
	obligationID := uuid.New()
	t.currentObligationID = obligationID

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	completedAt := now.Add(-24 * time.Hour)

	obligationModel := &model.ObligationModel{
		ID:          obligationID,
		Name:        name,
		Kind:        kind,
		DueDate:     today.AddDate(0, 0, -3),
		Completed:   true,
		CompletedAt: &completedAt,
		Active:      true,
		LastEditor:  "seed",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(obligationModel).Error
}

func (t *testContext) theObligationIsAssignedToTheClient() error {
	if t.currentObligationID == uuid.Nil || t.currentClientID == uuid.Nil {
		return errors.New("an obligation and a client must be seeded first")
	}

	var clientModel model.ClientModel
	if err := t.db.DbConn.First(&clientModel, "id = ?", t.currentClientID).Error; err != nil {
		return err
	}

	return t.db.DbConn.Model(&model.ObligationModel{}).
		Where("id = ?", t.currentObligationID).
		Updates(map[string]any{
			"client_id":   t.currentClientID,
			"client_name": clientModel.Name,
		}).Error
}

func (t *testContext) aMonthlyTaxWithCodeDueOnDayExists(name, code string, day int) error {
	taxID := uuid.New()
	t.currentTaxID = taxID

	now := time.Now().UTC()
	taxModel := &model.TaxModel{
		ID:                taxID,
		Name:              name,
		Code:              code,
		Jurisdiction:      "federal",
		Frequency:         "monthly",
		AnchorDayOfMonth:  day,
		AdvanceNoticeDays: 7,
		Active:            true,
		LastEditor:        "seed",
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	return t.db.DbConn.Create(taxModel).Error
}

func (t *testContext) anInactiveTaxWithCodeExists(name, code string) error {
	taxID := uuid.New()
	t.currentTaxID = taxID

	now := time.Now().UTC()
	taxModel := &model.TaxModel{
		ID:                taxID,
		Name:              name,
		Code:              code,
		Jurisdiction:      "federal",
		Frequency:         "monthly",
		AnchorDayOfMonth:  10,
		AdvanceNoticeDays: 7,
		Active:            false,
		LastEditor:        "seed",
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	return t.db.DbConn.Create(taxModel).Error
}

func (t *testContext) anInstallmentPlanOfInInstallmentsExists(name, totalAmount string, count int) error {
	planID := uuid.New()
	t.currentPlanID = planID

	total, err := decimal.NewFromString(totalAmount)
	if err != nil {
		return fmt.Errorf("invalid total amount '%s': %w", totalAmount, err)
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	nextDue := today.AddDate(0, 1, 0)

	planModel := &model.InstallmentPlanModel{
		ID:                 planID,
		Name:               name,
		TotalAmount:        total,
		InstallmentCount:   count,
		CurrentInstallment: 1,
		Status:             "active",
		StartDate:          today,
		Frequency:          "monthly",
		AnchorDayOfMonth:   today.Day(),
		NextDueDate:        &nextDue,
		Active:             true,
		LastEditor:         "seed",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return t.db.DbConn.Create(planModel).Error
}

func (t *testContext) theInstallmentPlanIs(status string) error {
	if t.currentPlanID == uuid.Nil {
		return errors.New("an installment plan must be seeded first")
	}

	return t.db.DbConn.Model(&model.InstallmentPlanModel{}).
		Where("id = ?", t.currentPlanID).
		Update("status", status).Error
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
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{client_id}}", t.currentClientID.String())
	content = strings.ReplaceAll(content, "{{responsible_id}}", t.currentResponsibleID.String())
	content = strings.ReplaceAll(content, "{{obligation_id}}", t.currentObligationID.String())
	content = strings.ReplaceAll(content, "{{tax_id}}", t.currentTaxID.String())
	content = strings.ReplaceAll(content, "{{plan_id}}", t.currentPlanID.String())

	content = dayOffsetPattern.ReplaceAllStringFunc(content, func(match string) string {
		offset := 0
		if sub := dayOffsetPattern.FindStringSubmatch(match); sub[1] != "" {
			offset, _ = strconv.Atoi(sub[1])
		}
		return time.Now().UTC().AddDate(0, 0, offset).Format("2006-01-02")
	})

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.uri + path

	var req *http.Request
	var err error
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

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	t.captureCreatedID(method, path, responseBody)
	return nil
}

// captureCreatedID remembers the ID of a freshly created resource so
// later steps can reference it through placeholders.
func (t *testContext) captureCreatedID(method, path string, body map[string]any) {
	if method != http.MethodPost {
		return
	}
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case strings.HasPrefix(path, "/api/v1/obligations"):
		t.currentObligationID = id
	case strings.HasPrefix(path, "/api/v1/clients"):
		t.currentClientID = id
	case strings.HasPrefix(path, "/api/v1/responsibles"):
		t.currentResponsibleID = id
	case strings.HasPrefix(path, "/api/v1/taxes"):
		t.currentTaxID = id
	case strings.HasPrefix(path, "/api/v1/installments"):
		t.currentPlanID = id
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

	expectedValue = t.replacePlaceholders(expectedValue)

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
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

	if value := getFieldValue(t.response.body, field); value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	count, err := t.countRows(entity, nil)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	count, err := t.countRows(entity, criteria)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) countRows(entity any, criteria map[string]any) (int, error) {
	entityType := reflect.TypeOf(entity).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(slicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, result.Error
	}

	return slicePtr.Elem().Len(), nil
}

// getFieldValue walks a dot-separated path through nested objects and
// arrays, with numeric segments used as array indexes.
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

	var field any = objectMap
	for _, segment := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(segment); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
		} else {
			m, ok := field.(map[string]any)
			if !ok {
				return nil
			}
			field = m[segment]
		}
	}

	return field
}
