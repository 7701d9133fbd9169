package render

import "resume-builder/internal/model"

// modern lays the resume out in two columns: experience and projects in the
// primary column, education and skills in the secondary one. Contact items
// carry icon markers the stylesheet turns into glyphs.
func modern(doc model.Document) *Node {
	root := el("div", "resume modern")
	root.Append(modernHeader(doc.PersonalInfo))

	main := el("div", "col main")
	if len(doc.Experience) > 0 {
		sec := el("section", "experience", text("h2", "section-title", "Professional Experience"))
		for _, exp := range doc.Experience {
			entry := el("div", "entry")
			head := el("div", "entry-head", text("h3", "", exp.Position))
			if dr := dateRange(exp.StartDate, exp.EndDate, exp.Current); dr != "" {
				head.Append(text("span", "dates", dr))
			}
			entry.Append(head, text("h4", "company", exp.Company))
			if exp.Description != "" {
				entry.Append(text("p", "description", exp.Description))
			}
			if len(exp.Bullets) > 0 {
				ul := el("ul", "bullets")
				for _, b := range exp.Bullets {
					ul.Append(text("li", "", b))
				}
				entry.Append(ul)
			}
			sec.Append(entry)
		}
		main.Append(sec)
	}
	if len(doc.Projects) > 0 {
		sec := el("section", "projects", text("h2", "section-title", "Projects"))
		for _, p := range doc.Projects {
			entry := el("div", "entry")
			head := el("div", "entry-head", text("h3", "", p.Name))
			if p.Link != "" {
				head.Append(text("a", "project-link", "View Project").
					WithAttr("href", p.Link).
					WithAttr("title", linkLabel(p.Link, "link")))
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
		main.Append(sec)
	}

	side := el("div", "col side")
	if len(doc.Education) > 0 {
		sec := el("section", "education", text("h2", "section-title", "Education"))
		for _, edu := range doc.Education {
			entry := el("div", "entry", text("h3", "", edu.Institution))
			if dl := degreeLine(edu); dl != "" {
				entry.Append(text("p", "degree", dl))
			}
			if dr := dateRange(edu.StartDate, edu.EndDate, false); dr != "" {
				entry.Append(text("p", "dates", dr))
			}
			if edu.Description != "" {
				entry.Append(text("p", "description", edu.Description))
			}
			sec.Append(entry)
		}
		side.Append(sec)
	}
	if len(doc.Skills) > 0 {
		sec := el("section", "skills", text("h2", "section-title", "Skills"))
		list := el("div", "skill-list")
		for _, s := range doc.Skills {
			list.Append(el("div", "skill",
				text("span", "skill-name", s.Name),
				text("span", "skill-level", string(s.Level)),
			))
		}
		sec.Append(list)
		side.Append(sec)
	}

	root.Append(el("div", "columns", main, side))
	return root
}

func modernHeader(p model.PersonalInfo) *Node {
	header := el("header", "header", text("h1", "name", displayName(p)))
	contact := el("div", "contact")
	if p.Email != "" {
		contact.Append(el("span", "contact-item icon-mail", text("span", "", p.Email)))
	}
	if p.Phone != "" {
		contact.Append(el("span", "contact-item icon-phone", text("span", "", p.Phone)))
	}
	if p.Location != "" {
		contact.Append(el("span", "contact-item icon-pin", text("span", "", p.Location)))
	}
	if p.Website != "" {
		contact.Append(el("span", "contact-item icon-globe", text("span", "", p.Website)))
	}
	if len(contact.Kids) > 0 {
		header.Append(contact)
	}
	if p.Summary != "" {
		header.Append(text("p", "summary", p.Summary))
	}
	return header
}
