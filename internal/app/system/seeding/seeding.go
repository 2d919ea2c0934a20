// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	pagestore "github.com/safispaces/safispaces/internal/app/store/pages"
	"github.com/safispaces/safispaces/internal/domain/models"
)

// SeedAll seeds default data if not already present.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedPages(ctx, db, logger); err != nil {
		return err
	}
	return nil
}

// seedPages creates default pages if they don't exist.
func seedPages(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := pagestore.New(db)

	defaultPages := []models.Page{
		{
			Slug:  models.PageSlugAbout,
			Title: "About Us",
			Content: `<h2>About SafiSpaces</h2>
<p>SafiSpaces is a professional cleaning company based in Nairobi, serving homes
and businesses across Kenya. Our trained and vetted teams handle everything from
daily office upkeep to deep post-construction cleanup.</p>
<p>We bring our own eco-friendly supplies and equipment, work around your
schedule, and back every job with a satisfaction guarantee.</p>`,
		},
		{
			Slug:  models.PageSlugTerms,
			Title: "Terms of Service",
			Content: `<h2>Terms of Service</h2>
<p>By requesting a quote or booking a service with SafiSpaces you agree to the
following terms.</p>
<ul>
<li>Quotes are estimates based on the information you provide and may be
adjusted after an on-site assessment.</li>
<li>Bookings may be rescheduled or cancelled up to 24 hours before the
appointment at no charge.</li>
<li>Payment is due on completion of the service unless agreed otherwise in
writing.</li>
<li>Any damage claims must be reported within 48 hours of the service.</li>
</ul>`,
		},
		{
			Slug:  models.PageSlugPrivacy,
			Title: "Privacy Policy",
			Content: `<h2>Privacy Policy</h2>
<p>SafiSpaces collects only the information needed to respond to your quote
request: your name, email address, optional phone number, the service you are
interested in, and your message.</p>
<ul>
<li>We use your details solely to prepare your quote and contact you about it.</li>
<li>We never sell or share your information with third parties for marketing.</li>
<li>You may ask us to delete your details at any time by contacting us.</li>
</ul>`,
		},
	}

	for _, page := range defaultPages {
		exists, err := store.Exists(ctx, page.Slug)
		if err != nil {
			logger.Error("failed to check if page exists",
				zap.String("slug", page.Slug),
				zap.Error(err))
			return err
		}
		if !exists {
			if err := store.Upsert(ctx, page); err != nil {
				logger.Error("failed to seed page",
					zap.String("slug", page.Slug),
					zap.Error(err))
				return err
			}
			logger.Info("seeded default page", zap.String("slug", page.Slug))
		}
	}

	return nil
}
