package dashboard

// indexPage is the single-page dashboard UI. It drives the JSON API under
// /api/v1 and renders the interaction network with Cytoscape.js.
const indexPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>dgigo dashboard</title>
  <script src="https://unpkg.com/cytoscape@3/dist/cytoscape.min.js"></script>
  <style>
    * {
      box-sizing: border-box;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      margin: 0;
      display: flex;
      height: 100vh;
      background: #f5f5f5;
    }
    #sidebar {
      width: 320px;
      min-width: 320px;
      padding: 16px;
      background: white;
      border-right: 1px solid #ddd;
      overflow-y: auto;
    }
    #sidebar h1 {
      font-size: 18px;
      margin: 0 0 12px;
    }
    #sidebar label {
      display: block;
      font-size: 12px;
      text-transform: uppercase;
      color: #888;
      margin: 12px 0 4px;
    }
    #terms {
      width: 100%;
      height: 180px;
    }
    #search {
      margin-top: 12px;
      width: 100%;
      padding: 8px;
      background: #4A90D9;
      color: white;
      border: none;
      border-radius: 4px;
      cursor: pointer;
    }
    #search:disabled {
      background: #aaa;
    }
    #status {
      margin-top: 8px;
      font-size: 13px;
      color: #666;
      min-height: 1.2em;
    }
    #status.error {
      color: #c0392b;
    }
    .panel {
      margin-top: 16px;
      padding: 8px;
      background: #fafafa;
      border: 1px solid #eee;
      border-radius: 4px;
      font-size: 13px;
    }
    .panel h2 {
      font-size: 13px;
      margin: 0 0 6px;
      color: #333;
    }
    .panel .detail {
      color: #555;
      margin: 2px 0;
      word-break: break-word;
    }
    #cy {
      flex: 1;
      background: white;
    }
  </style>
</head>
<body>
  <div id="sidebar">
    <h1>Drug-Gene Interactions</h1>
    <label>Search mode</label>
    <div>
      <label style="display:inline; text-transform:none; color:#333">
        <input type="radio" name="mode" value="genes" checked> genes
      </label>
      <label style="display:inline; text-transform:none; color:#333">
        <input type="radio" name="mode" value="drugs"> drugs
      </label>
    </div>
    <label for="terms">Terms</label>
    <select id="terms" multiple></select>
    <button id="search">Search</button>
    <div id="status"></div>
    <div class="panel" id="node-panel">
      <h2>Selected node</h2>
      <div class="detail">Click a node in the graph.</div>
    </div>
    <div class="panel" id="edge-panel">
      <h2>Selected edge</h2>
      <div class="detail">Click an edge in the graph.</div>
    </div>
  </div>
  <div id="cy"></div>
  <script>
    (function() {
      const modeInputs = document.querySelectorAll('input[name="mode"]');
      const termsSelect = document.getElementById('terms');
      const searchButton = document.getElementById('search');
      const status = document.getElementById('status');
      const nodePanel = document.getElementById('node-panel');
      const edgePanel = document.getElementById('edge-panel');
      let cy = null;

      function currentMode() {
        for (const input of modeInputs) {
          if (input.checked) return input.value;
        }
        return 'genes';
      }

      function setStatus(text, isError) {
        status.textContent = text;
        status.className = isError ? 'error' : '';
      }

      function escapeHtml(str) {
        if (!str) return '';
        return String(str).replace(/&/g, '&amp;')
                  .replace(/</g, '&lt;')
                  .replace(/>/g, '&gt;')
                  .replace(/"/g, '&quot;');
      }

      async function fetchJSON(url) {
        const resp = await fetch(url);
        const body = await resp.json();
        if (!resp.ok) {
          throw new Error(body.error || ('request failed: ' + resp.status));
        }
        return body;
      }

      async function loadTerms() {
        const mode = currentMode();
        setStatus('Loading ' + mode + '...', false);
        termsSelect.innerHTML = '';
        try {
          const concepts = await fetchJSON('/api/v1/' + mode);
          for (const concept of concepts) {
            const option = document.createElement('option');
            option.value = concept.name;
            option.textContent = concept.name;
            termsSelect.appendChild(option);
          }
          setStatus(concepts.length + ' ' + mode + ' available', false);
        } catch (err) {
          setStatus(err.message, true);
        }
      }

      function showNode(data) {
        let html = '<h2>Selected node</h2>';
        html += '<div class="detail"><b>' + escapeHtml(data.label) + '</b> (' +
          (data.isGene ? 'gene' : 'drug') + ')</div>';
        html += '<div class="detail">Interactions: ' + data.degree + '</div>';
        const neighbors = cy.getElementById(data.id).neighborhood('node')
          .map(function(n) { return escapeHtml(n.data('label')); });
        if (neighbors.length > 0) {
          html += '<div class="detail">Neighbors: ' + neighbors.join(', ') + '</div>';
        }
        nodePanel.innerHTML = html;
      }

      function showEdge(data) {
        let html = '<h2>Selected edge</h2>';
        html += '<div class="detail"><b>' + escapeHtml(data.id) + '</b></div>';
        html += '<div class="detail">Approved: ' + data.approval + '</div>';
        html += '<div class="detail">Score: ' + data.score + '</div>';
        if (data.sourcedata && data.sourcedata.length > 0) {
          html += '<div class="detail">Sources: ' + data.sourcedata.map(escapeHtml).join(', ') + '</div>';
        }
        if (data.pmid && data.pmid.length > 0) {
          html += '<div class="detail">PMIDs: ' + data.pmid.join(', ') + '</div>';
        }
        edgePanel.innerHTML = html;
      }

      function render(elements) {
        if (cy) cy.destroy();
        cy = cytoscape({
          container: document.getElementById('cy'),
          elements: elements,
          style: [
            {
              selector: 'node[?isGene]',
              style: {
                'background-color': '#4A90D9',
                'label': 'data(label)',
                'font-size': '10px',
                'text-valign': 'bottom',
                'text-margin-y': '5px',
                'width': 'mapData(degree, 0, 10, 25, 50)',
                'height': 'mapData(degree, 0, 10, 25, 50)'
              }
            },
            {
              selector: 'node[isGene = false]',
              style: {
                'background-color': '#E8923A',
                'shape': 'diamond',
                'label': 'data(label)',
                'font-size': '10px',
                'text-valign': 'bottom',
                'text-margin-y': '5px',
                'width': 'mapData(degree, 0, 10, 25, 50)',
                'height': 'mapData(degree, 0, 10, 25, 50)'
              }
            },
            {
              selector: ':parent',
              style: {
                'background-opacity': 0.08,
                'border-color': '#bbb',
                'border-width': 1
              }
            },
            {
              selector: 'edge[?approval]',
              style: {
                'line-color': '#5CB85C',
                'curve-style': 'bezier',
                'width': 2
              }
            },
            {
              selector: 'edge',
              style: {
                'line-color': '#95A5A6',
                'curve-style': 'bezier',
                'width': 2
              }
            }
          ],
          layout: { name: 'preset', animate: false }
        });

        cy.on('tap', 'node', function(evt) {
          if (evt.target.isParent()) return;
          showNode(evt.target.data());
        });
        cy.on('tap', 'edge', function(evt) {
          showEdge(evt.target.data());
        });
      }

      async function search() {
        const terms = Array.from(termsSelect.selectedOptions)
          .map(function(o) { return o.value; });
        if (terms.length === 0) {
          setStatus('Select at least one term.', true);
          return;
        }
        searchButton.disabled = true;
        setStatus('Querying DGIdb...', false);
        try {
          const params = new URLSearchParams({
            mode: currentMode(),
            terms: terms.join(','),
          });
          const elements = await fetchJSON('/api/v1/graph?' + params);
          render(elements);
          const n = (elements.nodes || []).length;
          const e = (elements.edges || []).length;
          setStatus(n + ' nodes, ' + e + ' edges', false);
        } catch (err) {
          setStatus(err.message, true);
        } finally {
          searchButton.disabled = false;
        }
      }

      for (const input of modeInputs) {
        input.addEventListener('change', loadTerms);
      }
      searchButton.addEventListener('click', search);

      loadTerms();
    })();
  </script>
</body>
</html>`
