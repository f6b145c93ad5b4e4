package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"loandesk-backend/internal/domain/applicant"
	"loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/provider"
	"loandesk-backend/internal/domain/storage"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

func providerInput(email string) provider.CreateInput {
	return provider.CreateInput{
		Name:            "Acme Lending",
		Email:           email,
		Phone:           "555-0100",
		Address:         "1 Main St",
		LicenseNumber:   "LC-1",
		InterestRateMin: decimal.RequireFromString("4.00"),
		InterestRateMax: decimal.RequireFromString("12.00"),
		MaxLoanAmount:   decimal.RequireFromString("100000.00"),
	}
}

func applicantInput(email string) applicant.CreateInput {
	return applicant.CreateInput{
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            email,
		Phone:            "555-0101",
		Address:          "2 Oak St",
		DateOfBirth:      "1990-01-15",
		SSN:              "123-45-6789",
		EmploymentStatus: applicant.Employed,
		AnnualIncome:     decimal.RequireFromString("75000.00"),
	}
}

func mustCreateApp(t *testing.T, s *Store, applicantID, providerID, amount string, status application.Status) *application.LoanApplication {
	t.Helper()
	app, err := s.CreateLoanApplication(context.Background(), application.CreateInput{
		ApplicantID: applicantID,
		ProviderID:  providerID,
		LoanAmount:  dec(t, amount),
		LoanPurpose: "test",
		LoanTerm:    12,
		Status:      status,
	})
	if err != nil {
		t.Fatalf("CreateLoanApplication: %v", err)
	}
	return app
}

func TestCreateProvider_RoundTrip(t *testing.T) {
	s := NewEmpty()
	ctx := context.Background()

	in := providerInput("acme@example.com")
	created, err := s.CreateLoanProvider(ctx, in)
	if err != nil {
		t.Fatalf("CreateLoanProvider: %v", err)
	}
	if len(created.ID) != 32 {
		t.Fatalf("id length = %d, want 32", len(created.ID))
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not assigned")
	}
	if created.Status != provider.StatusActive {
		t.Fatalf("default status = %s, want active", created.Status)
	}

	got, err := s.GetLoanProvider(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetLoanProvider: %v", err)
	}
	if got.Name != in.Name || got.Email != in.Email || !got.MaxLoanAmount.Equal(in.MaxLoanAmount) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestGetProvider_NotFound(t *testing.T) {
	s := NewEmpty()
	_, err := s.GetLoanProvider(context.Background(), "ffffffffffffffffffffffffffffffff")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateProvider_DuplicateEmail(t *testing.T) {
	s := NewEmpty()
	ctx := context.Background()
	if _, err := s.CreateLoanProvider(ctx, providerInput("dup@example.com")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := s.CreateLoanProvider(ctx, providerInput("dup@example.com"))
	if !errors.Is(err, storage.ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestUpdateProvider_PartialMerge(t *testing.T) {
	s := NewEmpty()
	ctx := context.Background()
	created, _ := s.CreateLoanProvider(ctx, providerInput("merge@example.com"))

	name := "New Name"
	updated, err := s.UpdateLoanProvider(ctx, created.ID, provider.UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("UpdateLoanProvider: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("name = %s, want %s", updated.Name, name)
	}
	// untouched fields retain prior values
	if updated.Email != created.Email || updated.Phone != created.Phone {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateProvider_EmailUniquenessOnUpdate(t *testing.T) {
	s := NewEmpty()
	ctx := context.Background()
	_, _ = s.CreateLoanProvider(ctx, providerInput("first@example.com"))
	second, _ := s.CreateLoanProvider(ctx, providerInput("second@example.com"))

	taken := "first@example.com"
	_, err := s.UpdateLoanProvider(ctx, second.ID, provider.UpdateInput{Email: &taken})
	if !errors.Is(err, storage.ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestApplicant_SSNMaskedOnCreate(t *testing.T) {
	s := NewEmpty()
	a, err := s.CreateApplicant(context.Background(), applicantInput("mask@example.com"))
	if err != nil {
		t.Fatalf("CreateApplicant: %v", err)
	}
	if a.SSN != "***-**-6789" {
		t.Fatalf("ssn = %q, want masked", a.SSN)
	}
}

func TestDelete_IdempotentOnAbsent(t *testing.T) {
	s := NewEmpty()
	ctx := context.Background()
	created, _ := s.CreateLoanProvider(ctx, providerInput("del@example.com"))

	ok, err := s.DeleteLoanProvider(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("first delete: ok=%v err=%v", ok, err)
	}
	ok, err = s.DeleteLoanProvider(ctx, created.ID)
	if err != nil || ok {
		t.Fatalf("second delete: ok=%v err=%v, want false,nil", ok, err)
	}

	logs, _ := s.GetAuditLogs(ctx)
	deletes := 0
	for _, l := range logs {
		if l.Action == audit.ActionDelete {
			deletes++
		}
	}
	if deletes != 1 {
		t.Fatalf("delete audit entries = %d, want 1", deletes)
	}
}

func TestAuditCompleteness(t *testing.T) {
	s := NewEmpty()
	ctx := context.Background()

	p, _ := s.CreateLoanProvider(ctx, providerInput("audit@example.com"))
	name := "Renamed"
	_, _ = s.UpdateLoanProvider(ctx, p.ID, provider.UpdateInput{Name: &name})
	_, _ = s.DeleteLoanProvider(ctx, p.ID)

	logs, err := s.GetAuditLogs(ctx)
	if err != nil {
		t.Fatalf("GetAuditLogs: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("audit entries = %d, want 3", len(logs))
	}
	// newest first
	wantActions := []audit.Action{audit.ActionDelete, audit.ActionUpdate, audit.ActionCreate}
	for i, want := range wantActions {
		if logs[i].Action != want {
			t.Fatalf("logs[%d].Action = %s, want %s", i, logs[i].Action, want)
		}
		if logs[i].EntityType != audit.EntityProvider || logs[i].EntityID != p.ID {
			t.Fatalf("logs[%d] wrong entity: %+v", i, logs[i])
		}
		if logs[i].UserID != storage.DefaultUserID {
			t.Fatalf("logs[%d].UserID = %s", i, logs[i].UserID)
		}
	}
}

func TestCreateAuditLog_ViewHook(t *testing.T) {
	s := NewEmpty()
	row, err := s.CreateAuditLog(context.Background(), audit.Entry{
		EntityType: audit.EntityApplicant,
		EntityID:   "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Action:     audit.ActionView,
		Details:    "Viewed applicant profile",
	})
	if err != nil {
		t.Fatalf("CreateAuditLog: %v", err)
	}
	if row.UserID != storage.DefaultUserID {
		t.Fatalf("UserID = %s, want default", row.UserID)
	}
	if row.Timestamp.IsZero() || len(row.ID) != 32 {
		t.Fatalf("server-assigned fields missing: %+v", row)
	}
}

func TestStatusTransition_SetsReviewFields(t *testing.T) {
	s := NewEmpty()
	ctx := context.Background()
	ap, _ := s.CreateApplicant(ctx, applicantInput("review@example.com"))
	pr, _ := s.CreateLoanProvider(ctx, providerInput("review-p@example.com"))
	app := mustCreateApp(t, s, ap.ID, pr.ID, "10000.00", "")

	if app.Status != application.StatusPending {
		t.Fatalf("default status = %s, want pending", app.Status)
	}

	// same status: review fields untouched
	same := application.StatusPending
	upd, err := s.UpdateLoanApplication(ctx, app.ID, application.UpdateInput{Status: &same})
	if err != nil {
		t.Fatalf("update same status: %v", err)
	}
	if upd.ReviewedAt != nil || upd.ReviewedBy != nil {
		t.Fatalf("review fields set on no-op status update: %+v", upd)
	}

	// different status: both set
	approved := application.StatusApproved
	upd, err = s.UpdateLoanApplication(ctx, app.ID, application.UpdateInput{Status: &approved})
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if upd.ReviewedAt == nil || upd.ReviewedBy == nil {
		t.Fatal("review fields not set on status transition")
	}
	if *upd.ReviewedBy != storage.DefaultUserID {
		t.Fatalf("ReviewedBy = %s", *upd.ReviewedBy)
	}
}

func TestJoinResolution_ReferentialConsistency(t *testing.T) {
	s := NewEmpty()
	ctx := context.Background()
	ap, _ := s.CreateApplicant(ctx, applicantInput("join@example.com"))
	pr, _ := s.CreateLoanProvider(ctx, providerInput("join-p@example.com"))
	app := mustCreateApp(t, s, ap.ID, pr.ID, "5000.00", "")

	got, err := s.GetLoanApplication(ctx, app.ID)
	if err != nil {
		t.Fatalf("GetLoanApplication: %v", err)
	}
	if got.Applicant.ID != got.ApplicantID || got.Provider.ID != got.ProviderID {
		t.Fatalf("join mismatch: %+v", got)
	}

	list, err := s.GetLoanApplications(ctx)
	if err != nil {
		t.Fatalf("GetLoanApplications: %v", err)
	}
	for _, row := range list {
		if row.Applicant.ID != row.ApplicantID || row.Provider.ID != row.ProviderID {
			t.Fatalf("list join mismatch: %+v", row)
		}
	}
}

func TestJoinResolution_DanglingReference(t *testing.T) {
	s := NewEmpty()
	ctx := context.Background()
	ap, _ := s.CreateApplicant(ctx, applicantInput("dangle@example.com"))
	pr, _ := s.CreateLoanProvider(ctx, providerInput("dangle-p@example.com"))
	app := mustCreateApp(t, s, ap.ID, pr.ID, "5000.00", "")

	if _, err := s.DeleteApplicant(ctx, ap.ID); err != nil {
		t.Fatalf("DeleteApplicant: %v", err)
	}

	_, err := s.GetLoanApplication(ctx, app.ID)
	if !errors.Is(err, storage.ErrDanglingReference) {
		t.Fatalf("err = %v, want ErrDanglingReference", err)
	}

	list, err := s.GetLoanApplications(ctx)
	if err != nil {
		t.Fatalf("GetLoanApplications: %v", err)
	}
	for _, row := range list {
		if row.ID == app.ID {
			t.Fatal("dangling application not omitted from listing")
		}
	}
}

func TestDashboardStats(t *testing.T) {
	s := NewEmpty()
	ctx := context.Background()
	ap, _ := s.CreateApplicant(ctx, applicantInput("stats@example.com"))
	pr, _ := s.CreateLoanProvider(ctx, providerInput("stats-p@example.com"))

	mustCreateApp(t, s, ap.ID, pr.ID, "1000.00", application.StatusPending)
	mustCreateApp(t, s, ap.ID, pr.ID, "25000.00", application.StatusApproved)
	mustCreateApp(t, s, ap.ID, pr.ID, "15000.00", application.StatusApproved)
	mustCreateApp(t, s, ap.ID, pr.ID, "9000.00", application.StatusRejected)

	stats, err := s.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if stats.TotalApplications != 4 {
		t.Fatalf("TotalApplications = %d, want 4", stats.TotalApplications)
	}
	if stats.ApprovedLoans != 2 {
		t.Fatalf("ApprovedLoans = %d, want 2", stats.ApprovedLoans)
	}
	if stats.PendingReview != 1 {
		t.Fatalf("PendingReview = %d, want 1", stats.PendingReview)
	}
	if !stats.TotalValue.Equal(dec(t, "40000.00")) {
		t.Fatalf("TotalValue = %s, want 40000.00", stats.TotalValue)
	}
}

func TestSeededStore(t *testing.T) {
	s := New()
	ctx := context.Background()

	providers, _ := s.GetLoanProviders(ctx)
	applicants, _ := s.GetApplicants(ctx)
	apps, _ := s.GetLoanApplications(ctx)
	if len(providers) == 0 || len(applicants) == 0 || len(apps) == 0 {
		t.Fatal("seed data missing")
	}
	// seed rows are fixtures, not user actions
	logs, _ := s.GetAuditLogs(ctx)
	if len(logs) != 0 {
		t.Fatalf("seed produced %d audit entries, want 0", len(logs))
	}
	// listing order: newest submission first
	for i := 1; i < len(apps); i++ {
		if apps[i].SubmittedAt.After(apps[i-1].SubmittedAt) {
			t.Fatal("applications not ordered by submittedAt descending")
		}
	}
}
