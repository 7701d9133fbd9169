package render

import "resume-builder/internal/model"

// minimal is the compact layout: plain header, summary without a heading,
// pill-styled skill tags, and skills/projects side by side in a sub-grid.
// Entry descriptions for experience and education are deliberately omitted.
func minimal(doc model.Document) *Node {
	root := el("div", "resume minimal")

	header := el("header", "header", text("h1", "name", displayName(doc.PersonalInfo)))
	contact := el("div", "contact")
	for _, item := range []string{
		doc.PersonalInfo.Email,
		doc.PersonalInfo.Phone,
		doc.PersonalInfo.Location,
		doc.PersonalInfo.Website,
	} {
		if item != "" {
			contact.Append(text("span", "contact-item", item))
		}
	}
	if len(contact.Kids) > 0 {
		header.Append(contact)
	}
	root.Append(header)

	if doc.PersonalInfo.Summary != "" {
		root.Append(el("section", "summary", text("p", "", doc.PersonalInfo.Summary)))
	}

	if len(doc.Experience) > 0 {
		sec := el("section", "experience", text("h2", "section-title", "Experience"))
		for _, exp := range doc.Experience {
			entry := el("div", "entry")
			head := el("div", "entry-head", text("h3", "", exp.Position))
			if dr := dateRange(exp.StartDate, exp.EndDate, exp.Current); dr != "" {
				head.Append(text("span", "dates", dr))
			}
			entry.Append(head, text("h4", "company", exp.Company))
			if len(exp.Bullets) > 0 {
				ul := el("ul", "bullets")
				for _, b := range exp.Bullets {
					ul.Append(text("li", "", b))
				}
				entry.Append(ul)
			}
			sec.Append(entry)
		}
		root.Append(sec)
	}

	if len(doc.Education) > 0 {
		sec := el("section", "education", text("h2", "section-title", "Education"))
		for _, edu := range doc.Education {
			entry := el("div", "entry")
			head := el("div", "entry-head", text("h3", "", edu.Institution))
			if dr := dateRange(edu.StartDate, edu.EndDate, false); dr != "" {
				head.Append(text("span", "dates", dr))
			}
			entry.Append(head)
			if dl := degreeLine(edu); dl != "" {
				entry.Append(text("p", "degree", dl))
			}
			sec.Append(entry)
		}
		root.Append(sec)
	}

	grid := el("div", "grid")
	if len(doc.Skills) > 0 {
		sec := el("section", "skills", text("h2", "section-title", "Skills"))
		pills := el("div", "pills")
		for _, s := range doc.Skills {
			pills.Append(text("span", "pill", s.Name))
		}
		sec.Append(pills)
		grid.Append(sec)
	}
	if len(doc.Projects) > 0 {
		sec := el("section", "projects", text("h2", "section-title", "Projects"))
		for _, p := range doc.Projects {
			entry := el("div", "entry")
			head := el("div", "entry-head", text("h3", "", p.Name))
			if p.Link != "" {
				head.Append(text("a", "project-link", linkLabel(p.Link, "Link")).
					WithAttr("href", p.Link))
			}
			entry.Append(head)
			if p.Technologies != "" {
				entry.Append(text("p", "technologies", p.Technologies))
			}
			if p.Description != "" {
				entry.Append(text("p", "description", p.Description))
			}
			sec.Append(entry)
		}
		grid.Append(sec)
	}
	if len(grid.Kids) > 0 {
		root.Append(grid)
	}

	return root
}
